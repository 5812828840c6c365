package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/templates"
)

type contextKey string

const QuoteSessionKey contextKey = "quoteSession"
const HeaderDataKey contextKey = "headerData"
const SidebarDataKey contextKey = "sidebarData"

// GetQuoteSession extracts the quote session from the request context.
func GetQuoteSession(r *http.Request) *QuoteSession {
	if val, ok := r.Context().Value(QuoteSessionKey).(*QuoteSession); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// GetSidebarData extracts the pre-built SidebarData from the request context.
func GetSidebarData(r *http.Request) templates.SidebarData {
	if val, ok := r.Context().Value(SidebarDataKey).(templates.SidebarData); ok {
		return val
	}
	return templates.SidebarData{}
}

// QuoteSessionMiddleware reads the "quote_session" cookie, resolves or
// creates the session, and stores it with the header and sidebar data in the
// request context so handlers and templates can use them.
func QuoteSessionMiddleware(env *Env) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var id string
		if cookie, err := e.Request.Cookie(quoteSessionCookie); err == nil {
			id = cookie.Value
		}

		sess, created := env.Sessions.Get(id)
		if created {
			http.SetCookie(e.Response, &http.Cookie{
				Name:     quoteSessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		headerData := templates.HeaderData{CompanyName: env.CompanyName}

		ctx := context.WithValue(e.Request.Context(), QuoteSessionKey, sess)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		// Sidebar counts read the session, so it must be in context first.
		sidebarData := BuildSidebarData(e.Request, env)
		ctx = context.WithValue(e.Request.Context(), SidebarDataKey, sidebarData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
