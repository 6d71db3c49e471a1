package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/gobrain/internal/config"
	"github.com/jcorbin/gobrain/internal/logio"
	"github.com/stretchr/testify/assert"
)

type machineTestCases []machineTestCase

func (mts machineTestCases) run(t *testing.T) {
	{
		var exclusive []machineTestCase
		for _, mt := range mts {
			if mt.exclusive {
				exclusive = append(exclusive, mt)
			}
		}
		if len(exclusive) > 0 {
			mts = exclusive
		}
	}
	for _, mt := range mts {
		t.Run(mt.name, mt.run)
	}
}

func machineTest(name string) (mt machineTestCase) {
	mt.name = name
	mt.capacity = config.DefaultCapacity
	return mt
}

type machineTestCase struct {
	name     string
	capacity int
	code     string
	opts     []MachineOption
	setup    []func(m *Machine)
	steps    int
	timeout  time.Duration

	wantBuildErr error
	wantErr      error
	expect       []func(t *testing.T, m *Machine)

	exclusive bool
}

func (mt machineTestCase) apply(wraps ...func(machineTestCase) machineTestCase) machineTestCase {
	for _, wrap := range wraps {
		mt = wrap(mt)
	}
	return mt
}

func (mt machineTestCase) exclusiveTest() machineTestCase {
	mt.exclusive = true
	return mt
}

func (mt machineTestCase) withProgram(code string) machineTestCase {
	mt.code = code
	return mt
}

func (mt machineTestCase) withCapacity(capacity int) machineTestCase {
	mt.capacity = capacity
	return mt
}

func (mt machineTestCase) withOptions(opts ...MachineOption) machineTestCase {
	mt.opts = append(mt.opts, opts...)
	return mt
}

func (mt machineTestCase) withMaxOps(n int) machineTestCase {
	mt.opts = append(mt.opts, WithMaxOps(n))
	return mt
}

func (mt machineTestCase) withTape(addr int, values ...byte) machineTestCase {
	mt.setup = append(mt.setup, func(m *Machine) {
		m.tape.Stor(addr, values...)
	})
	return mt
}

func (mt machineTestCase) withDataPtr(dp int) machineTestCase {
	mt.setup = append(mt.setup, func(m *Machine) {
		m.dp = dp
	})
	return mt
}

func (mt machineTestCase) withInstrPtr(ip int) machineTestCase {
	mt.setup = append(mt.setup, func(m *Machine) {
		m.ip = ip
	})
	return mt
}

func (mt machineTestCase) withTimeout(timeout time.Duration) machineTestCase {
	mt.timeout = timeout
	return mt
}

func (mt machineTestCase) doSteps(n int) machineTestCase {
	mt.steps = n
	return mt
}

func (mt machineTestCase) expectBuildError(err error) machineTestCase {
	mt.wantBuildErr = err
	return mt
}

func (mt machineTestCase) expectError(err error) machineTestCase {
	mt.wantErr = err
	return mt
}

func (mt machineTestCase) expectTape(addr int, values ...byte) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		buf := make([]byte, len(values))
		if assert.NoError(t, m.tape.LoadInto(addr, buf), "must load tape @%v", addr) {
			assert.Equal(t, values, buf, "expected tape values @%v", addr)
		}
	})
	return mt
}

func (mt machineTestCase) expectDataPtr(dp int) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, dp, m.dp, "expected data pointer")
	})
	return mt
}

func (mt machineTestCase) expectInstrPtr(ip int) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, ip, m.ip, "expected instruction pointer")
	})
	return mt
}

func (mt machineTestCase) expectHalted(halted bool) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, halted, m.Halted(), "expected halted")
	})
	return mt
}

func (mt machineTestCase) expectOps(ops int) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, ops, m.Ops(), "expected op count")
	})
	return mt
}

func (mt machineTestCase) expectOutput(output string) machineTestCase {
	var out strings.Builder
	mt.opts = append(mt.opts, WithOutput(&out))
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return mt
}

func (mt machineTestCase) expectSnapshot(lines ...string) machineTestCase {
	mt.expect = append(mt.expect, func(t *testing.T, m *Machine) {
		assert.Equal(t, strings.Join(lines, "\n")+"\n", m.Snapshot().String(), "expected snapshot")
	})
	return mt
}

func (mt machineTestCase) run(t *testing.T) {
	var trace []string
	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Log(line)
			}
		}
	}()

	opts := append([]MachineOption{
		WithLogf(func(mess string, args ...interface{}) {
			trace = append(trace, fmt.Sprintf(mess, args...))
		}),
	}, mt.opts...)

	m, err := New(NewProgram(mt.capacity, mt.code), opts...)
	if mt.wantBuildErr != nil {
		assert.True(t, errors.Is(err, mt.wantBuildErr), "expected build error: %v\ngot: %+v", mt.wantBuildErr, err)
		return
	}
	if !assert.NoError(t, err, "unexpected build error") {
		return
	}
	for _, setup := range mt.setup {
		setup(m)
	}

	defer func() {
		if t.Failed() {
			dumpToTest(t, m)
		}
	}()

	if err := mt.runMachine(m); mt.wantErr != nil {
		assert.True(t, errors.Is(err, mt.wantErr), "expected error: %v\ngot: %+v", mt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected machine run error")
	}

	if !t.Failed() {
		for _, expect := range mt.expect {
			expect(t, m)
		}
	}
}

func (mt machineTestCase) runMachine(m *Machine) error {
	if mt.steps > 0 {
		for i := 0; i < mt.steps; i++ {
			if err := m.Step(); err != nil {
				return err
			}
		}
		return nil
	}

	const defaultTimeout = time.Second
	timeout := mt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return m.Run(ctx)
}

func dumpToTest(t *testing.T, m *Machine) {
	lw := logio.Writer{Logf: t.Logf, Prefix: "state: "}
	defer lw.Close()
	fmt.Fprintf(&lw, "ops=%v halted=%v dp=%v ip=%v\n", m.Ops(), m.Halted(), m.dp, m.ip)
	fmt.Fprint(&lw, m.Snapshot())
}
