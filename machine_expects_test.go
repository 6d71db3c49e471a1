package main

// @generated from harness_test.go

//go:generate go run scripts/gen_machine_expects.go -- harness_test.go machine_expects_test.go

import "time"

func withMachineProgram(code string) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withProgram(code)
	}
}

func withMachineCapacity(capacity int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withCapacity(capacity)
	}
}

func withMachineOptions(opts ...MachineOption) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withOptions(opts...)
	}
}

func withMachineMaxOps(n int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withMaxOps(n)
	}
}

func withMachineTape(addr int, values ...byte) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withTape(addr, values...)
	}
}

func withMachineDataPtr(dp int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withDataPtr(dp)
	}
}

func withMachineInstrPtr(ip int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withInstrPtr(ip)
	}
}

func withMachineTimeout(timeout time.Duration) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withTimeout(timeout)
	}
}

func expectMachineBuildError(err error) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectBuildError(err)
	}
}

func expectMachineError(err error) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectError(err)
	}
}

func expectMachineTape(addr int, values ...byte) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectTape(addr, values...)
	}
}

func expectMachineDataPtr(dp int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectDataPtr(dp)
	}
}

func expectMachineInstrPtr(ip int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectInstrPtr(ip)
	}
}

func expectMachineHalted(halted bool) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectHalted(halted)
	}
}

func expectMachineOps(ops int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectOps(ops)
	}
}

func expectMachineOutput(output string) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectOutput(output)
	}
}

func expectMachineSnapshot(lines ...string) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectSnapshot(lines...)
	}
}
