package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formval/pkg/logger"
)

// Handlers are the outcome callbacks of a validation pass. Exactly one of
// them is called, before Validate returns. Either may be nil.
type Handlers struct {
	OnSuccess func(Report)
	OnError   func(Report)
}

// Validate runs a validation pass:
//
//  1. clear the presentation of every field, interval and custom validation;
//  2. evaluate the constraints of every watched field;
//  3. evaluate the intervals;
//  4. evaluate the custom validations;
//  5. present field, interval and custom validation failures;
//  6. decide the outcome from the field results, or from every result
//     when Config.StrictSuccess is set;
//  7. call the matching handler.
//
// Interval fields with different data types abort the pass with an error
// wrapping ErrDataTypeMismatch; no handler is called and the form ends in
// StateError. A panic raised while the pass runs also leaves the form in
// StateError before it propagates. Calling Validate while a pass is running
// returns a *TransitionError.
func (f *Form) Validate(ctx context.Context, h Handlers) (Report, error) {
	state, err := transition(passTransitions, f.state, eventStart)
	if err != nil {
		return Report{}, err
	}
	f.state = state
	defer func() {
		if r := recover(); r != nil {
			if f.state == StateValidating {
				f.state, _ = transition(passTransitions, f.state, eventAbort)
			}
			panic(r)
		}
	}()

	passID := uuid.NewString()
	ctx = withPassID(ctx, passID)
	start := time.Now()

	report := Report{
		PassID:   passID,
		Form:     f.name,
		Language: f.dict.Language(),
	}

	// 1
	for _, fld := range f.fields {
		f.clearField(fld)
	}
	for _, name := range f.intervals.Names() {
		f.sink.ShowFormMessage(name, "")
	}
	for _, cv := range f.customs.rules {
		f.sink.ShowFormMessage(cv.Name, "")
	}

	// 2
	report.FieldsValid = true
	for _, fld := range f.fields {
		if fld.Ignored() {
			continue
		}
		if !f.evaluateField(ctx, fld).OK() {
			report.FieldsValid = false
		}
	}

	// 3
	intervals, err := f.intervals.EvaluateAll(f.source)
	if err != nil {
		f.state, _ = transition(passTransitions, f.state, eventAbort)
		f.logger.ErrorContext(ctx, "validation pass aborted", logger.Error(err))
		for _, obs := range f.engine.observers {
			obs.PassAborted(ctx, f.name, err)
		}
		return report, err
	}

	// 4
	rules := f.customs.Rules()
	customs := evaluateCustom(rules)

	// 5
	for _, fld := range f.fields {
		report.Fields = append(report.Fields, f.presentField(fld))
	}
	report.Intervals = f.presentIntervals(intervals)
	report.Custom = f.presentCustom(ctx, rules, customs)

	// 6
	report.Valid = report.FieldsValid
	if f.engine.cfg.StrictSuccess {
		report.Valid = report.Valid && len(report.FailedIntervals()) == 0 && len(report.FailedRules()) == 0
	}

	ev := eventSucceed
	if !report.Valid {
		ev = eventFail
	}
	f.state, _ = transition(passTransitions, f.state, ev)

	elapsed := time.Since(start)
	f.logger.InfoContext(ctx, "validation pass completed",
		slog.Bool("valid", report.Valid),
		slog.Any("failed_fields", report.FailedFields()),
		slog.Any("failed_intervals", report.FailedIntervals()),
		slog.Any("failed_rules", report.FailedRules()),
		logger.Duration(elapsed),
	)
	for _, obs := range f.engine.observers {
		obs.PassCompleted(ctx, report, elapsed)
	}

	// 7
	if report.Valid {
		if h.OnSuccess != nil {
			h.OnSuccess(report)
		}
	} else if h.OnError != nil {
		h.OnError(report)
	}
	return report, nil
}

func (f *Form) clearField(fld *Field) {
	f.sink.ClearFieldMessage(fld.name)
	if f.engine.cfg.UseStyle {
		f.sink.ApplyFieldStyle(fld.name, StyleNone)
	}
}

// presentField shows the state recorded for fld. Ignored fields are
// reported valid and left cleared.
func (f *Form) presentField(fld *Field) FieldResult {
	res := FieldResult{Name: fld.name, Ignored: fld.Ignored(), Valid: true}
	if res.Ignored {
		return res
	}

	cfg := f.engine.cfg
	if fld.valid {
		if cfg.UseStyle && cfg.HighlightSuccess {
			f.sink.ApplyFieldStyle(fld.name, StyleSuccess)
		}
		return res
	}

	res.Valid = false
	res.Failed = fld.failed
	if spec, ok := fld.constraints.Get(fld.failed); ok {
		res.Message = f.dict.Format(f.dict.Template(spec.MessageKey()), spec.MessageArgs(f.dict.Alias(fld.name))...)
	}
	if cfg.UseStyle && cfg.HighlightErrors {
		f.sink.ApplyFieldStyle(fld.name, StyleError)
	}
	if cfg.MessageErrors {
		f.sink.ShowFieldMessage(fld.name, res.Message)
	}
	return res
}

func (f *Form) presentIntervals(results []IntervalResult) []IntervalResult {
	for i, res := range results {
		if res.Passed {
			continue
		}
		results[i].Message = f.dict.Format(f.dict.Template("intervalField"),
			f.dict.Alias(res.MinField),
			f.dict.Alias(res.MaxField),
		)
		if f.engine.cfg.MessageErrors {
			f.sink.ShowFormMessage(res.Name, results[i].Message)
		}
	}
	return results
}

// presentCustom shows failures of rules; results[i] is the outcome of rules[i].
func (f *Form) presentCustom(ctx context.Context, rules []CustomValidation, results []CustomResult) []CustomResult {
	for i, res := range results {
		if res.Passed {
			continue
		}
		cv := rules[i]
		results[i].Message = f.dict.Format(f.dict.Message(cv.MessageKey), cv.Args...)
		f.logger.DebugContext(ctx, "custom validation failed", logger.Rule(cv.Name))
		f.sink.ShowFormMessage(res.Name, results[i].Message)
	}
	return results
}
