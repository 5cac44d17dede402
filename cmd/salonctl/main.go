// salonctl is a small console front end for the salon booking API client.
// It stands in for the web presentation layer: every subcommand goes through
// the same typed API surface and auth workflow the UI would use.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/salonhub/salon-client/internal/api"
	"github.com/salonhub/salon-client/internal/core/domain"
	"github.com/salonhub/salon-client/internal/core/service"
	"github.com/salonhub/salon-client/internal/infrastructure/config"
	"github.com/salonhub/salon-client/internal/infrastructure/httpclient"
	"github.com/salonhub/salon-client/internal/infrastructure/storage/sqlite"
	"github.com/salonhub/salon-client/pkg/logger"
)

const usage = `usage: salonctl <command> [flags]

commands:
  login       -u <username> -p <password>
  logout
  whoami
  businesses                      list all businesses (admin)
  create-business -name -slug [-email]
  my-business                     show the owner's business
  services    [-slug <slug>]      owner's services, or a public page's
  bookings    [-date yyyy-mm-dd]  owner's bookings (default: all, -today for today)
  slots       -slug -service <id> [-date yyyy-mm-dd]
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.Open(cfg.CredentialsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open credential store")
	}
	defer db.Close()

	// Wiring order: store, then publisher, then transports, then the API
	// surface, then the auth workflow on top.
	store := sqlite.NewCredentialStore(db)
	if err := store.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("init credential store")
	}
	publisher := service.NewAuthStatePublisher(store, log)

	public, err := httpclient.NewTransport(cfg.APIBaseURL, cfg.HTTPTimeout, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build transport")
	}
	authed, err := httpclient.NewInterceptor(cfg.APIBaseURL, cfg.HTTPTimeout, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build interceptor")
	}

	client := api.NewClient(public, authed, log)
	auth := service.NewAuthService(client, store, publisher, log)

	unsubscribe := publisher.Subscribe(func(state domain.AuthState) {
		log.Debug().Bool("authenticated", state.Authenticated).Str("role", state.Role).Msg("auth state changed")
	})
	defer unsubscribe()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(ctx, os.Args[1], os.Args[2:], client, auth, publisher); err != nil {
		log.Fatal().Err(err).Msg(os.Args[1] + " failed")
	}
}

func run(ctx context.Context, command string, args []string, client *api.Client, auth *service.AuthService, publisher *service.AuthStatePublisher) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		username := fs.String("u", "", "username")
		password := fs.String("p", "", "password")
		_ = fs.Parse(args)

		resp, err := auth.Login(ctx, domain.LoginRequest{Username: *username, Password: *password})
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", resp.Username, resp.Role)
		return nil

	case "logout":
		return auth.Logout(ctx)

	case "whoami":
		state := publisher.CurrentState(ctx)
		if !state.Authenticated {
			fmt.Println("anonymous")
			return nil
		}
		fmt.Printf("%s (%s)\n", state.Username, state.Role)
		return nil

	case "businesses":
		businesses, err := client.GetAllBusinesses(ctx)
		if err != nil {
			return err
		}
		for _, b := range businesses {
			fmt.Printf("%d\t%s\t%s\tactive=%t\n", b.ID, b.Slug, b.Name, b.Active)
		}
		return nil

	case "create-business":
		fs := flag.NewFlagSet("create-business", flag.ExitOnError)
		name := fs.String("name", "", "business name")
		slug := fs.String("slug", "", "url slug")
		email := fs.String("email", "", "owner email")
		_ = fs.Parse(args)

		created, err := client.CreateBusiness(ctx, domain.BusinessRequest{Name: *name, Slug: *slug, OwnerEmail: *email})
		if err != nil {
			return err
		}
		fmt.Printf("created %s — owner %s, temporary password: %s\n",
			created.BusinessSlug, created.OwnerUsername, created.TemporaryPassword)
		return nil

	case "my-business":
		business, err := client.GetMyBusiness(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s) booking url: %s\n", business.Name, business.Slug, business.BookingURL)
		return nil

	case "services":
		fs := flag.NewFlagSet("services", flag.ExitOnError)
		slug := fs.String("slug", "", "public page slug (omit for own services)")
		_ = fs.Parse(args)

		var services []domain.ServiceResponse
		var err error
		if *slug != "" {
			services, err = client.GetPublicServices(ctx, *slug)
		} else {
			services, err = client.GetMyServices(ctx)
		}
		if err != nil {
			return err
		}
		for _, s := range services {
			fmt.Printf("%d\t%s\t%d min\t%s\n", s.ID, s.Name, s.DurationMinutes, s.Price)
		}
		return nil

	case "bookings":
		fs := flag.NewFlagSet("bookings", flag.ExitOnError)
		date := fs.String("date", "", "yyyy-mm-dd")
		today := fs.Bool("today", false, "today's bookings")
		_ = fs.Parse(args)

		var bookings []domain.BookingResponse
		var err error
		switch {
		case *today:
			bookings, err = client.GetTodayBookings(ctx)
		case *date != "":
			var day time.Time
			day, err = time.Parse(domain.DateLayout, *date)
			if err != nil {
				return fmt.Errorf("parse -date: %w", err)
			}
			bookings, err = client.GetBookingsByDate(ctx, day)
		default:
			bookings, err = client.GetAllMyBookings(ctx)
		}
		if err != nil {
			return err
		}
		for _, b := range bookings {
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n",
				b.ID, b.StartTime.Format(time.RFC3339), b.Service.Name, b.CustomerName, b.Status)
		}
		return nil

	case "slots":
		fs := flag.NewFlagSet("slots", flag.ExitOnError)
		slug := fs.String("slug", "", "public page slug")
		serviceID := fs.Int64("service", 0, "service id")
		date := fs.String("date", time.Now().Format(domain.DateLayout), "yyyy-mm-dd")
		_ = fs.Parse(args)

		day, err := time.Parse(domain.DateLayout, *date)
		if err != nil {
			return fmt.Errorf("parse -date: %w", err)
		}
		times, err := client.GetAvailableTimeSlots(ctx, *slug, day, *serviceID)
		if err != nil {
			return err
		}
		for _, slot := range times.TimeSlots {
			marker := " "
			if !slot.Available {
				marker = "x"
			}
			fmt.Printf("%s %s – %s\n", marker, slot.StartTime.Format("15:04"), slot.EndTime.Format("15:04"))
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
