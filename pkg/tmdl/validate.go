package tmdl

import (
	"errors"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// columnRefPattern matches Table[Column] references in DAX expressions.
	columnRefPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\[([^\]]+)\]`)
	// tableRefPattern matches bare table arguments of COUNTROWS.
	tableRefPattern = regexp.MustCompile(`COUNTROWS\(\s*([A-Za-z_][A-Za-z0-9_]*)\s*\)`)
)

// Validate implements validation.Validatable.
func (c Column) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Match(identifierPattern)),
		validation.Field(&c.Type, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (t Table) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Match(identifierPattern)),
		validation.Field(&t.Columns, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (r ColumnRef) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Table, validation.Required),
		validation.Field(&r.Column, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (r Relationship) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.From),
		validation.Field(&r.To),
		validation.Field(&r.CrossFilter, validation.Required, validation.In(OneToMany, BothDirections)),
	)
}

// Validate implements validation.Validatable.
func (m Measure) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Expression, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (d DateTable) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Match(identifierPattern)),
		validation.Field(&d.Start, validation.Required, validation.Date(dateLayout)),
		validation.Field(&d.End, validation.Required, validation.Date(dateLayout), validation.By(func(interface{}) error {
			start, end, err := d.Range()
			if err != nil {
				// Reported by the date rules.
				return nil
			}
			if end.Before(start) {
				return errors.New("must not be before start")
			}
			return nil
		})),
	)
}

// Validate implements validation.Validatable.
func (m Model) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Match(identifierPattern)),
	)
}

// Validate checks field rules and then cross-checks every table, column,
// relationship and measure reference against the declared tables.
// All failures wrap ErrInvalidSchema.
func (s *Schema) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.Model),
		validation.Field(&s.Tables, validation.Required),
		validation.Field(&s.DateTable),
		validation.Field(&s.Relationships),
		validation.Field(&s.Measures),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	if err := s.crossCheck(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return nil
}

// crossCheck reports duplicate names and dangling references.
func (s *Schema) crossCheck() error {
	var errs []error

	columns := make(map[string]map[string]bool, len(s.Tables)+1)
	declare := func(table string, names []string) {
		if _, dup := columns[table]; dup {
			errs = append(errs, &DuplicateError{Kind: "table", Name: table})
			return
		}
		cols := make(map[string]bool, len(names))
		for _, name := range names {
			if cols[name] {
				errs = append(errs, &DuplicateError{Kind: "column", Name: name, Scope: table})
			}
			cols[name] = true
		}
		columns[table] = cols
	}

	for _, t := range s.Tables {
		names := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			names[i] = c.Name
		}
		declare(t.Name, names)
	}
	declare(s.DateTable.Name, DateColumns())

	// Lineage tags must be unique per scope. Distinct names can share a slug,
	// e.g. "Notes" and "NOTES".
	tagOwner := func(owners map[string]string, kind, name, tag, scope string) {
		if other, ok := owners[tag]; ok && other != name {
			errs = append(errs, &DuplicateError{
				Kind:  kind + " lineage tag",
				Name:  tag,
				Scope: scope,
			})
			return
		}
		owners[tag] = name
	}

	tableTags := map[string]string{dateTableTag: s.DateTable.Name}
	for _, t := range s.Tables {
		tagOwner(tableTags, "table", t.Name, LineageTag(t.Name, "table"), "")
		columnTags := make(map[string]string, len(t.Columns))
		for _, c := range t.Columns {
			tagOwner(columnTags, "column", c.Name, LineageTag(c.Name, "column"), t.Name)
		}
	}

	measureTags := make(map[string]string, len(s.Measures))
	for _, m := range s.Measures {
		tagOwner(measureTags, "measure", m.Name, LineageTag(m.Name, "measure"), "")
	}

	resolveColumn := func(object string, ref ColumnRef) {
		if cols, ok := columns[ref.Table]; !ok || !cols[ref.Column] {
			errs = append(errs, &ReferenceError{Object: object, Ref: ref.String()})
		}
	}
	resolveExpression := func(object, expr string) {
		for _, m := range columnRefPattern.FindAllStringSubmatch(expr, -1) {
			resolveColumn(object, ColumnRef{Table: m[1], Column: m[2]})
		}
		for _, m := range tableRefPattern.FindAllStringSubmatch(expr, -1) {
			if _, ok := columns[m[1]]; !ok {
				errs = append(errs, &ReferenceError{Object: object, Ref: m[1]})
			}
		}
	}

	for _, t := range s.Tables {
		for _, c := range t.Columns {
			if c.Calculated() {
				resolveExpression(fmt.Sprintf("column %s[%s]", t.Name, c.Name), c.Expression)
			}
		}
	}

	for _, r := range s.Relationships {
		object := "relationship " + r.DisplayName()
		resolveColumn(object, r.From)
		resolveColumn(object, r.To)
	}

	seen := make(map[string]bool, len(s.Measures))
	for _, m := range s.Measures {
		if seen[m.Name] {
			errs = append(errs, &DuplicateError{Kind: "measure", Name: m.Name})
		}
		seen[m.Name] = true
		resolveExpression(fmt.Sprintf("measure '%s'", m.Name), m.Expression)
	}

	return errors.Join(errs...)
}
