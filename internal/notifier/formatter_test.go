package notifier

import (
	"strings"
	"testing"

	"stocksentry/internal/model"
)

func TestFormatAlert_Up(t *testing.T) {
	inst := model.Instrument{Symbol: "sh600438", Name: "通威股份", Threshold: 2.0}
	q := model.Quote{Symbol: "sh600438", Current: 10.25, Open: 10.00, Status: model.StatusOk}
	mv := model.Movement{Percent: 2.5, Absolute: 0.25}

	msg := FormatAlert(inst, q, mv)
	for _, want := range []string{"通威股份", "sh600438", "+2.50%", "10.25", "上涨"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatAlert_Down(t *testing.T) {
	inst := model.Instrument{Symbol: "sz300035", Name: "中科电气", Threshold: 2.0}
	q := model.Quote{Symbol: "sz300035", Current: 9.50, Open: 10.00, Status: model.StatusOk}
	mv := model.Movement{Percent: -5.0, Absolute: -0.50}

	msg := FormatAlert(inst, q, mv)
	for _, want := range []string{"-5.00%", "下跌"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert message missing %q:\n%s", want, msg)
		}
	}
}
