package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/foodgram/storefront/internal/foodapi"
	"github.com/foodgram/storefront/internal/models"
)

type AuthHandler struct {
	API       *foodapi.Client
	Templates *TemplateCache
	Sessions  *SessionManager
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("login.html")
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

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.API.Login(r.Context(), email, password)
	if err != nil {
		message := "An error occurred."
		switch {
		case foodapi.IsStatus(err, http.StatusNotFound):
			message = "Email mismatched."
		case foodapi.IsStatus(err, http.StatusUnauthorized):
			message = "Password mismatched."
		}
		h.Sessions.Flash(w, r, "error", message)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if user.Role != models.RoleUser && user.Role != models.RoleOwner {
		h.Sessions.Flash(w, r, "error", "Invalid role received.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.Sessions.Login(w, r, user); err != nil {
		slog.Error("Failed to save session", "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}
	h.Sessions.Flash(w, r, "success", "Welcome, "+user.Name+"!")

	slog.Info("Login successful", "user_id", user.ID, "role", user.Role)
	http.Redirect(w, r, DashboardPath(user.Role), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(w, r); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	// No flash here: the expiring session cannot carry one.
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("register.html")
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

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Sessions.Flash(w, r, "error", "Invalid form data.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	phoneNo := r.FormValue("phoneNo")
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirmPassword")
	role := r.FormValue("role")
	if role != models.RoleOwner {
		role = models.RoleUser
	}

	// Validation
	errors := make(map[string]string)
	if msg := validatePersonName(name); msg != "" {
		errors["name"] = msg
	}
	if msg := validateEmail(email); msg != "" {
		errors["email"] = msg
	}
	if msg := validatePhone(phoneNo); msg != "" {
		errors["phoneNo"] = msg
	}
	if password != confirmPassword {
		errors["confirmPassword"] = "Passwords do not match."
	}

	if len(errors) > 0 {
		for _, msg := range errors {
			h.Sessions.Flash(w, r, "error", msg)
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	err := h.API.Register(r.Context(), foodapi.RegisterRequest{
		Name:     normalizeName(name),
		Email:    email,
		PhoneNo:  phoneNo,
		Password: password,
		Role:     role,
	})
	if err != nil {
		h.Sessions.Flash(w, r, "error", foodapi.ErrorMessage(err, "Registration failed. Please try again."))
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	h.Sessions.Flash(w, r, "success", "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
