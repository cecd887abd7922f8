// Package schema builds forms from YAML declarations.
//
// A document names the form, its fields with their ordered constraints,
// cross-field intervals and custom validations bound to builtin predicates:
//
//	form: booking
//	language: en
//	dictionary:
//	  en:
//	    fields:
//	      numDays: Number of days
//	    messages:
//	      minNumDays:
//	        error: "Number of days must be greater than #1#"
//	fields:
//	  - name: numDays
//	    type: number
//	    constraints:
//	      - isRequired: true
//	      - min: 0
//	  - name: startDate
//	    type: date
//	  - name: endDate
//	    type: date
//	intervals:
//	  - name: startEnd
//	    min: startDate
//	    max: endDate
//	custom:
//	  - name: minNumDays
//	    predicate: gt
//	    field: numDays
//	    args: [2]
//
// Build registers everything on a new form of the given engine.
package schema
