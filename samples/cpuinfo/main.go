// Command cpuinfo prints the system registers a Linux process on an arm64
// core may read, decoded field by field.
package main

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/cpu"

	arm64 "cortexa/src/hardware/arm-cortex-a53"
	"cortexa/src/hardware/arm-cortex-a53/asm"
	"cortexa/src/hardware/arm-cortex-a53/barrier"
)

func main() {
	if runtime.GOARCH != "arm64" {
		logrus.Fatalf("cpuinfo reads AArch64 system registers; this is %s", runtime.GOARCH)
	}

	// Linux traps EL0 reads of the ID registers and emulates them only
	// when it advertises HWCAP_CPUID.
	if !cpu.ARM64.HasCPUID {
		logrus.Fatal("kernel does not emulate ID register reads")
	}
	logrus.WithFields(logrus.Fields{
		"aes":     cpu.ARM64.HasAES,
		"sha2":    cpu.ARM64.HasSHA2,
		"atomics": cpu.ARM64.HasATOMICS,
	}).Debug("hwcaps")

	midr := arm64.MIDR_EL1.Get()
	logrus.Info(arm64.MIDR_EL1_Layout.Describe(midr))
	if part, ok := midr.ReadEnum(arm64.MIDR_EL1_PartNum); ok {
		logrus.Infof("core is a %s r%dp%d", part.Name,
			midr.Read(arm64.MIDR_EL1_Variant), midr.Read(arm64.MIDR_EL1_Revision))
	}
	logrus.Info(arm64.MPIDR_EL1_Layout.Describe(arm64.MPIDR_EL1.Get()))
	logrus.Info(arm64.ID_AA64ISAR0_EL1_Layout.Describe(arm64.ID_AA64ISAR0_EL1.Get()))
	logrus.Info(arm64.ID_AA64MMFR0_EL1_Layout.Describe(arm64.ID_AA64MMFR0_EL1.Get()))

	timer := arm64.NewVirtualTimer()
	start := timer.Now()
	time.Sleep(10 * time.Millisecond)
	barrier.ISB(barrier.SY{})
	elapsed := timer.Now() - start
	logrus.WithFields(logrus.Fields{
		"frequency": timer.Frequency(),
		"ticks":     elapsed,
		"expected":  timer.Ticks(10 * time.Millisecond),
	}).Info("virtual counter over a 10ms sleep")

	rng, err := asm.DetectRNG()
	if err != nil {
		logrus.WithError(err).Warn("no hardware random numbers")
		return
	}
	if v, ok := rng.RNDR(); ok {
		logrus.Infof("RNDR: %#016x", v)
	}
}
