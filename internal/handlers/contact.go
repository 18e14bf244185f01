package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"

	"github.com/foodgram/storefront/internal/foodapi"
)

func (h *HomeHandler) ContactGet(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("contact.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   h.Sessions.PopFlashes(w, r),
	}
	tmpl.Execute(w, data)
}

func (h *HomeHandler) ContactPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	subject := r.FormValue("subject")
	message := r.FormValue("message")

	if msg := validateEmail(email); msg != "" {
		h.Sessions.Flash(w, r, "error", msg)
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}
	if len(strings.TrimSpace(message)) < 10 {
		h.Sessions.Flash(w, r, "error", "Message must be at least 10 characters long.")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	if err := h.API.SendContactMessage(r.Context(), email, subject, message); err != nil {
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Failed to send your message. Please try again."))
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Message sent. We will get back to you soon!")
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
