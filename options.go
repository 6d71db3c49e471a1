package main

import (
	"io"

	"github.com/jcorbin/gobrain/internal/config"
	"github.com/jcorbin/gobrain/internal/flushio"
	"github.com/jcorbin/gobrain/internal/runeio"
)

// MachineOption configures a Machine under construction by New.
type MachineOption interface{ apply(m *Machine) }

// MachineOptions combines any number of options into one, applied in order.
func MachineOptions(opts ...MachineOption) MachineOption {
	var res machineOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case machineOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type machineOptions []MachineOption

func (opts machineOptions) apply(m *Machine) {
	for _, opt := range opts {
		opt.apply(m)
	}
}

var defaultOptions = MachineOptions(
	withOutput(io.Discard),
	withMaxOps(config.DefaultMaxOps),
	withSnapshotLayout(config.DefaultLineLength, config.DefaultDataPadding),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(m *Machine) {
	m.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type hexOutputOption bool
type maxOpsOption int
type snapshotsOption struct{ io.Writer }
type pacerOption struct{ io.Reader }

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withMaxOps(n int) maxOpsOption       { return maxOpsOption(n) }

func (o outputOption) apply(m *Machine) {
	if m.out != nil {
		m.out.Flush()
	}
	m.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(m *Machine) {
	m.out = flushio.Tee(m.out, flushio.NewWriteFlusher(o.Writer))
}

func (hex hexOutputOption) apply(m *Machine) { m.hexOutput = bool(hex) }

func (n maxOpsOption) apply(m *Machine) { m.maxOps = int(n) }

func (o snapshotsOption) apply(m *Machine) { m.snapshots = o.Writer }

func (o pacerOption) apply(m *Machine) {
	if o.Reader == nil {
		m.pacer = nil
	} else {
		m.pacer = runeio.NewPacer(o.Reader)
	}
}

func withSnapshotLayout(lineLength, dataPadding int) snapshotLayout {
	return snapshotLayout{lineLength, dataPadding}
}

func (lay snapshotLayout) apply(m *Machine) { m.layout = lay }
