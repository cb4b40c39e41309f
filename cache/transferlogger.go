package cache

import (
	"log"

	"github.com/sarchlab/akita/v4/sim"
)

// TransferLogger is a hook that prints every transfer a cache reports.
type TransferLogger struct {
	sim.LogHookBase
}

// NewTransferLogger creates a TransferLogger that writes to logger.
func NewTransferLogger(logger *log.Logger) *TransferLogger {
	h := new(TransferLogger)
	h.Logger = logger
	return h
}

// Func prints the transfer carried by ctx. Other hook positions are ignored.
func (h *TransferLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosTransfer {
		return
	}

	t, ok := ctx.Item.(Transfer)
	if !ok {
		return
	}

	h.Printf("@@@ %s\n", t)
}
