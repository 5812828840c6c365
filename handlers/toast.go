package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf16"

	"github.com/pocketbase/pocketbase/core"
)

// ToastLevel selects the toast colour in static/js/toast.js.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastInfo    ToastLevel = "info"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// flashToastCookie carries a toast across a full-page redirect, where the
// HX-Trigger header never reaches htmx.
const flashToastCookie = "flash_toast"

type toastPayload struct {
	Message string     `json:"message"`
	Type    ToastLevel `json:"type"`
}

// SetToast queues a toast for the browser. It is sent as a showToast event
// in HX-Trigger, merged with the events already on the response, and as a
// short-lived flash cookie that toast.js reads after a plain redirect.
func SetToast(e *core.RequestEvent, level ToastLevel, message string) {
	payload := toastPayload{Message: message, Type: level}

	events := triggerEvents(e.Response.Header().Get("HX-Trigger"))
	events["showToast"] = payload
	data, err := json.Marshal(events)
	if err != nil {
		log.Printf("toast: marshal HX-Trigger: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", asciiJSON(data))

	cookie, err := json.Marshal(payload)
	if err != nil {
		log.Printf("toast: marshal flash cookie: %v", err)
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashToastCookie,
		Value:    url.QueryEscape(string(cookie)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by toast.js
		SameSite: http.SameSiteLaxMode,
	})
}

// triggerEvents decodes an HX-Trigger value. htmx accepts a JSON object or a
// comma-separated list of event names; names keep a null detail.
func triggerEvents(header string) map[string]any {
	events := map[string]any{}
	header = strings.TrimSpace(header)
	if header == "" {
		return events
	}
	if strings.HasPrefix(header, "{") {
		if err := json.Unmarshal([]byte(header), &events); err == nil {
			return events
		}
		log.Printf("toast: dropping malformed HX-Trigger %q", header)
		return map[string]any{}
	}
	for _, name := range strings.Split(header, ",") {
		if name = strings.TrimSpace(name); name != "" {
			events[name] = nil
		}
	}
	return events
}

// ErrorToast answers with an error toast and HX-Reswap: none, so htmx keeps
// the current markup while the toast still fires.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, ToastError, message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

// asciiJSON escapes non-ASCII runes as \uXXXX so the JSON survives as a
// header value. Browsers decode header bytes as Latin-1.
func asciiJSON(data []byte) string {
	var b strings.Builder
	for _, r := range string(data) {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
		default:
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	return b.String()
}
