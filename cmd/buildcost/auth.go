package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildcost/buildcost-go/core/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}

			res := a.session.Login(cmd.Context(), session.Credentials{
				Email:    email,
				Password: password,
			})
			if !res.Success {
				return errors.New(res.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Terminate the session and remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				// Logging out while logged out still clears local state.
				a.session.Logout(cmd.Context())
				return nil
			}
			a.session.Logout(cmd.Context())
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile behind the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			user := a.session.Current().User
			keys := make([]string, 0, len(user))
			for k := range user {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				printField(a.out, k, user[k])
			}
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var email, password, firstName, lastName, company, phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]any{
				"email":    email,
				"password": password,
			}
			if firstName != "" {
				fields["first_name"] = firstName
			}
			if lastName != "" {
				fields["last_name"] = lastName
			}
			if company != "" {
				fields["company_name"] = company
			}
			if phone != "" {
				fields["phone_number"] = phone
			}

			res := a.session.Register(cmd.Context(), fields)
			if !res.Success {
				return errors.New(res.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number for verification")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newOTPCmd(a *app) *cobra.Command {
	otp := &cobra.Command{
		Use:   "otp",
		Short: "Phone number verification",
	}

	var phone string
	send := &cobra.Command{
		Use:   "send",
		Short: "Send a verification code to a phone number",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.session.SendOTP(cmd.Context(), phone)
			if !res.Success {
				return errors.New(res.Error)
			}
			return nil
		},
	}
	send.Flags().StringVar(&phone, "phone", "", "phone number")
	send.MarkFlagRequired("phone")

	var verifyPhone, code string
	verify := &cobra.Command{
		Use:   "verify",
		Short: "Verify a phone number with a received code",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.session.VerifyOTP(cmd.Context(), verifyPhone, code)
			if !res.Success {
				return errors.New(res.Error)
			}
			return nil
		},
	}
	verify.Flags().StringVar(&verifyPhone, "phone", "", "phone number")
	verify.Flags().StringVar(&code, "code", "", "verification code")
	verify.MarkFlagRequired("phone")
	verify.MarkFlagRequired("code")

	otp.AddCommand(send, verify)
	return otp
}

func newProfileCmd(a *app) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account profile",
	}

	var sets []string
	update := &cobra.Command{
		Use:     "update",
		Short:   "Update profile fields",
		Example: `  buildcost profile update --set company_name="Acme Builders" --set phone_number=+254700000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			fields := make(map[string]any, len(sets))
			for _, s := range sets {
				key, value, ok := strings.Cut(s, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid --set %q, expected key=value", s)
				}
				fields[key] = value
			}
			if len(fields) == 0 {
				return errors.New("nothing to update, pass at least one --set")
			}

			res := a.session.UpdateProfile(cmd.Context(), fields)
			if !res.Success {
				return errors.New(res.Error)
			}
			return nil
		},
	}
	update.Flags().StringArrayVar(&sets, "set", nil, "field to update as key=value (repeatable)")

	profile.AddCommand(update)
	return profile
}
