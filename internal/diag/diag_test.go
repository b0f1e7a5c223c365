package diag

import (
	"strings"
	"testing"

	"hwlower/internal/ir"
)

func TestWarningfAt(t *testing.T) {
	m := ir.NewModule("m", nil)
	c := m.Constant(4, 1)
	d := Warningf("shape mismatch on %s", "pattern").At(c.DefiningOp())
	if d.Severity != SeverityWarning {
		t.Errorf("Warningf produced severity %v, want SeverityWarning", d.Severity)
	}
	if !strings.Contains(d.Error(), "constant") {
		t.Errorf("Error() = %q, want it to mention the pinned op's kind", d.Error())
	}
}

func TestInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Invalid did not panic")
		}
	}()
	Invalid("register %q has no clock", "r0")
}
