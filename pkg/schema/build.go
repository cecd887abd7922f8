package schema

import (
	"fmt"

	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/i18n"
)

// Build creates the declared form on e. The form language is the document
// language, or the engine's when unset. opts are applied after the options
// derived from the document.
func (d *Document) Build(e *form.Engine, src form.ValueSource, sink form.PresentationSink, opts ...form.Option) (*form.Form, error) {
	lang := d.Language
	if lang == "" {
		lang = e.Config().Language
	}

	base := make([]form.Option, 0, 2)
	if d.Language != "" {
		base = append(base, form.WithLanguage(d.Language))
	}
	if dict := d.dictionary(e, lang); dict != nil {
		base = append(base, form.WithDictionary(dict))
	}

	f, err := e.NewForm(d.Form, src, sink, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, fd := range d.Fields {
		spec := form.FieldSpec{Name: fd.Name, DataType: fd.Type}
		for _, c := range fd.Constraints {
			spec.Constraints = append(spec.Constraints, c.Spec)
		}
		if _, err := f.AddFieldSpec(spec); err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		if fd.Ignored {
			if err := f.IgnoreField(fd.Name); err != nil {
				return nil, err
			}
		}
	}

	for _, iv := range d.Intervals {
		if err := f.AddInterval(iv.Name, iv.Min, iv.Max); err != nil {
			return nil, fmt.Errorf("interval %q: %w", iv.Name, err)
		}
	}

	for _, cd := range d.Custom {
		if cd.Field == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, cd.Name)
		}
		fld := f.GetField(cd.Field)
		if fld == nil {
			return nil, fmt.Errorf("custom validation %q: %w: %q", cd.Name, form.ErrFieldNotFound, cd.Field)
		}
		pred, err := predicate(cd.Predicate, fld, e.Caster())
		if err != nil {
			return nil, fmt.Errorf("custom validation %q: %w", cd.Name, err)
		}
		err = f.AddCustom(form.CustomValidation{
			Name:       cd.Name,
			Predicate:  pred,
			Args:       cd.Args,
			MessageKey: cd.Message,
		})
		if err != nil {
			return nil, fmt.Errorf("custom validation %q: %w", cd.Name, err)
		}
	}
	return f, nil
}

// dictionary returns the document translations for lang, falling back to
// the language the engine catalog matches it to.
func (d *Document) dictionary(e *form.Engine, lang string) *i18n.Dictionary {
	data, ok := d.Dictionary[lang]
	if !ok {
		matched, err := e.Catalog().Match(lang)
		if err != nil {
			return nil
		}
		if data, ok = d.Dictionary[matched]; !ok {
			return nil
		}
		lang = matched
	}
	return i18n.NewDictionary(lang, data, e.Logger())
}
