package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s HTML-escaped.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) int(n int) {
	h.raw(strconv.Itoa(n))
}

// el writes <tag attrs...>text</tag>; attrs are name/value pairs.
func (h *htmlWriter) el(tag, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) open(tag string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// component adapts a writer function into a templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// fieldError renders a validation message under a form input.
func fieldError(h *htmlWriter, errs map[string]string, field string) {
	if msg, ok := errs[field]; ok {
		h.el("p", msg, "class", "field-error", "data-field", field)
	}
}

// input renders a labelled text-like input.
func input(h *htmlWriter, label, name, inputType, value string, errs map[string]string, extra ...string) {
	h.open("label", "class", "form-field")
	h.el("span", label)
	attrs := append([]string{"type", inputType, "name", name, "value", value}, extra...)
	h.open("input", attrs...)
	fieldError(h, errs, name)
	h.close("label")
}
