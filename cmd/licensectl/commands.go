package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dtroode/marketmanager-server/internal/app"
	"github.com/dtroode/marketmanager-server/internal/config"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/service"
)

const (
	defaultCount        = 1
	defaultDurationDays = 30
	dateLayout          = "2006-01-02"
)

func run(ctx context.Context, cfg *config.Config, lg *logger.Logger, args []string, out io.Writer) error {
	hasher := app.NewHasher(cfg.Auth)
	stores, err := app.OpenStores(ctx, cfg, hasher)
	if err != nil {
		return err
	}
	defer stores.Close()

	services, err := app.NewServices(cfg, stores, hasher, lg)
	if err != nil {
		return err
	}

	switch args[0] {
	case "generate":
		return generate(ctx, services.License, args[1:], out)
	case "single":
		return single(ctx, services.License, args[1:], out)
	case "list":
		return list(ctx, services.License, out)
	case "create-admin":
		return createAdmin(ctx, services.Auth, out)
	case "purge-sessions":
		n, err := services.Auth.PurgeExpiredSessions(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "removed %d expired sessions\n", n)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// intArg parses args[i], falling back to def when it is absent or not a positive number.
func intArg(args []string, i, def int) int {
	if i >= len(args) {
		return def
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return def
	}
	return n
}

func stringArg(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}

func generate(ctx context.Context, licenses *service.License, args []string, out io.Writer) error {
	count := intArg(args, 0, defaultCount)
	days := intArg(args, 1, defaultDurationDays)

	fmt.Fprintf(out, "issuing %d licenses for %d days\n\n", count, days)
	issued, err := licenses.CreateBatch(ctx, count, days)
	for i, l := range issued {
		printLicense(out, i+1, l)
	}
	return err
}

func single(ctx context.Context, licenses *service.License, args []string, out io.Writer) error {
	l, err := licenses.Create(ctx, model.CreateLicenseParams{
		CustomerName:  stringArg(args, 0),
		CustomerEmail: stringArg(args, 1),
		DurationDays:  intArg(args, 2, defaultDurationDays),
	})
	if err != nil {
		return err
	}

	printLicense(out, 1, l)
	return nil
}

func printLicense(out io.Writer, n int, l model.License) {
	fmt.Fprintf(out, "license %d:\n", n)
	fmt.Fprintf(out, "  key:      %s\n", l.LicenseKey)
	fmt.Fprintf(out, "  customer: %s\n", l.CustomerName)
	fmt.Fprintf(out, "  created:  %s\n", l.CreatedAt.Format(dateLayout))
	fmt.Fprintf(out, "  expires:  %s\n\n", l.ExpiresAt.Format(dateLayout))
}

func list(ctx context.Context, licenses *service.License, out io.Writer) error {
	all, err := licenses.List(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "no licenses")
		return nil
	}

	fmt.Fprintf(out, "total: %d\n\n", len(all))
	now := time.Now()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKEY\tCUSTOMER\tSTATUS\tEXPIRES")
	for i, l := range all {
		customer := l.CustomerName
		if customer == "" {
			customer = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, l.LicenseKey, customer, status(l, now), l.ExpiresAt.Format(dateLayout))
	}
	return w.Flush()
}

func status(l model.License, now time.Time) string {
	switch {
	case l.Expired(now):
		return "expired"
	case !l.IsActive:
		return "inactive"
	default:
		return "valid"
	}
}

func createAdmin(ctx context.Context, auth *service.Auth, out io.Writer) error {
	admin, err := auth.ResetAdminAccount(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "admin account reset\n  username: %s\n  password: %s\n  email:    %s\n",
		admin.Username, service.DefaultAdminPassword, admin.Email)
	fmt.Fprintln(out, "change the password after the first login")
	return nil
}
