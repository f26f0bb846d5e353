package services

import (
	"reflect"
	"strings"

	"invitepages/internal/domain"
)

// EvaluateGate decides whether a feature section renders. The rules apply
// in order:
//
//  1. visible == false suppresses unconditionally; data is not inspected.
//  2. visible with supplied-but-empty data suppresses.
//  3. everything else renders.
//
// Nil data means "not supplied": the owner asserted visibility without a
// data contract, so the section renders. Emptiness is shape-specific:
// zero-length sequences, zero-key maps, and whitespace-only strings are
// empty; any other non-nil value never is.
//
// Tier eligibility is not this function's concern. Callers check the
// tier matrix first and only evaluate gates for features the tier allows.
func EvaluateGate(visible bool, data any) domain.GateDecision {
	if !visible {
		return domain.GateSuppress
	}
	if data == nil {
		return domain.GateRender
	}
	if isEmptyValue(reflect.ValueOf(data)) {
		return domain.GateSuppress
	}
	return domain.GateRender
}

// EvaluateGateWithFallback is EvaluateGate plus an optional fallback
// payload attached to suppressed sections, for callers that render a
// placeholder instead (preview mode). Pass "" for no fallback.
func EvaluateGateWithFallback(visible bool, data any, fallback string) domain.SectionGate {
	decision := EvaluateGate(visible, data)
	gate := domain.SectionGate{Decision: decision}
	if decision == domain.GateSuppress {
		gate.Fallback = fallback
	}
	return gate
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			// Absent, not empty: treated as "not supplied".
			return false
		}
		return isEmptyValue(v.Elem())
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	}
	return false
}
