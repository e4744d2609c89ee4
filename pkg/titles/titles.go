package titles

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/arthur-debert/docflow/pkg/errors"
)

const (
	startTag = "{"
	endTag   = "}"
)

// Vars is the data available to a title template.
type Vars struct {
	Correspondent    string
	DocumentType     string
	OwnerUsername    string
	OriginalFilename string

	Added time.Time
	// Created is the zero time when unknown.
	Created time.Time
}

// Map returns the placeholder values for v.
func (v Vars) Map() map[string]string {
	m := map[string]string{
		"correspondent":     v.Correspondent,
		"document_type":     v.DocumentType,
		"owner_username":    v.OwnerUsername,
		"original_filename": v.OriginalFilename,
	}
	addDate(m, "added", v.Added)
	if !v.Created.IsZero() {
		addDate(m, "created", v.Created)
	}
	return m
}

func addDate(m map[string]string, prefix string, t time.Time) {
	m[prefix] = t.Format("2006-01-02")
	m[prefix+"_year"] = t.Format("2006")
	m[prefix+"_year_short"] = t.Format("06")
	m[prefix+"_month"] = t.Format("01")
	m[prefix+"_month_name"] = t.Format("January")
	m[prefix+"_month_name_short"] = t.Format("Jan")
	m[prefix+"_day"] = t.Format("02")
	m[prefix+"_time"] = t.Format("15:04")
}

// Placeholders lists every placeholder name, in documentation order.
func Placeholders() []string {
	names := []string{"correspondent", "document_type", "owner_username", "original_filename"}
	for _, prefix := range []string{"added", "created"} {
		names = append(names,
			prefix,
			prefix+"_year",
			prefix+"_year_short",
			prefix+"_month",
			prefix+"_month_name",
			prefix+"_month_name_short",
			prefix+"_day",
			prefix+"_time",
		)
	}
	return names
}

// Validate checks brace structure and placeholder names without rendering.
// A valid template can still fail to render when it uses a created
// placeholder on a document without a created date.
func Validate(tpl string) error {
	known := make(map[string]bool)
	for _, name := range Placeholders() {
		known[name] = true
	}

	open := -1
	for i, r := range tpl {
		switch r {
		case '{':
			if open >= 0 {
				return invalid(tpl, "nested '{' at offset %d", i)
			}
			open = i
		case '}':
			if open < 0 {
				return invalid(tpl, "unmatched '}' at offset %d", i)
			}
			name := strings.TrimSpace(tpl[open+1 : i])
			if name == "" {
				return invalid(tpl, "empty placeholder at offset %d", open)
			}
			if !known[name] {
				return invalid(tpl, "unknown placeholder %q", name)
			}
			open = -1
		}
	}
	if open >= 0 {
		return invalid(tpl, "unclosed '{' at offset %d", open)
	}
	return nil
}

// Render interpolates tpl with vars and trims the result.
func Render(tpl string, vars Vars) (string, error) {
	if err := Validate(tpl); err != nil {
		return "", err
	}

	t, err := fasttemplate.NewTemplate(tpl, startTag, endTag)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateInvalid, "cannot parse title template %q", tpl).
			WithDetail("template", tpl)
	}

	values := vars.Map()
	out, err := t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		v, ok := values[name]
		if !ok {
			return 0, invalid(tpl, "unknown placeholder %q", name)
		}
		return w.Write([]byte(v))
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrTemplateInvalid) {
			return "", err
		}
		return "", errors.Wrapf(err, errors.ErrTemplateInvalid, "cannot render title template %q", tpl).
			WithDetail("template", tpl)
	}

	return strings.TrimSpace(out), nil
}

func invalid(tpl, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrTemplateInvalid, "title template %q: %s", tpl, fmt.Sprintf(format, args...)).
		WithDetail("template", tpl)
}
