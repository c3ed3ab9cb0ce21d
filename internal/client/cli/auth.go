package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vyapkart/vyapkart-cli/internal/client/identity"
	"github.com/vyapkart/vyapkart-cli/internal/client/models"
	"github.com/vyapkart/vyapkart-cli/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects the registration form, creates the identity-provider
// account and stores the pending registration record. The backend is not
// contacted; the user must verify their email and then log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer WipeBytes(password)

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone (10 digits)", os.Stdout)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Enter role (BUYER or SELLER)", os.Stdout)
	if err != nil {
		return err
	}
	role = strings.ToUpper(role)

	var businessName, gstNumber string
	if role == models.RoleSeller {
		businessName, err = getSimpleText(a.reader, "Enter business name", os.Stdout)
		if err != nil {
			return err
		}
		gstNumber, err = getSimpleText(a.reader, "Enter GST number (optional)", os.Stdout)
		if err != nil {
			return err
		}
	}

	err = a.authService.Register(ctx, services.RegisterParams{
		Email:        email,
		Password:     password,
		FullName:     fullName,
		Phone:        phone,
		Role:         role,
		BusinessName: businessName,
		GSTNumber:    gstNumber,
	})
	if err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Println("Account created. Check your inbox for the verification email, then log in.")
	return nil
}

// Login prompts for credentials and runs the email/password handshake.
// On success the restored profile becomes the current user.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer WipeBytes(password)

	profile, err := a.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailNotVerified) {
			fmt.Println("Login failed:", identity.ErrEmailNotVerified)
			return err
		}
		fmt.Println("Login failed:", err)
		return err
	}

	a.profile = profile
	fmt.Printf("Welcome, %s!\n", displayName(profile))
	return nil
}

// LoginOTP is the phone-based login variant.
func (a *App) LoginOTP(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone (10 digits)", os.Stdout)
	if err != nil {
		return err
	}

	otp, err := getSimpleText(a.reader, "Enter one-time code", os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.authService.LoginWithOTP(ctx, phone, otp)
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	a.profile = profile
	fmt.Printf("Welcome, %s!\n", displayName(profile))
	return nil
}

// Logout signs out at the provider (best-effort) and clears the persisted
// session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	a.profile = nil
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the stored profile and, when the session token is a JWT,
// its expiry.
func (a *App) Whoami(ctx context.Context) error {
	if a.profile == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("User #%d  %s\n", a.profile.UserID, a.profile.Email)
	if a.profile.FullName != "" {
		fmt.Println("Name: ", a.profile.FullName)
	}
	if a.profile.Phone != "" {
		fmt.Println("Phone:", a.profile.Phone)
	}
	fmt.Println("Roles:", strings.Join(a.profile.Roles, ", "))

	if expiry, ok, err := a.authService.SessionExpiry(ctx); err == nil && ok {
		fmt.Println("Session valid until:", expiry.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func displayName(p *models.UserProfile) string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
