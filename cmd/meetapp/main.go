package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"meetapp/internal/config"
	"meetapp/internal/controller"
	"meetapp/internal/credentials"
	"meetapp/internal/gateway"
	"meetapp/internal/logger"
	"meetapp/internal/model"
	"meetapp/internal/notify"
	"meetapp/internal/session"
	"meetapp/internal/telemetry"
	"meetapp/internal/transport"
	"meetapp/internal/util"
	"meetapp/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Warning: failed to load .env:", err)
	}

	cfg := config.NewConfig()

	tel, err := telemetry.New(cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: telemetry shutdown:", err)
		}
	}()

	log := logger.New(*cfg)

	creds, err := credentials.NewStore(cfg.Storage.CredentialsPath)
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}

	httpClient := transport.NewClient(transport.Options{
		Credentials: creds,
		Logger:      log.Logger,
		Telemetry:   tel,
		LogBodies:   cfg.API.LogBodies,
		Timeout:     cfg.API.Timeout,
	})

	gw, err := gateway.New(gateway.Config{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: httpClient,
		Logger:     log.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create gateway: %w", err)
	}

	facade := session.New(gw)
	validate := validator.New()
	notifier := notify.NewNotifier(log.Logger)

	auth := controller.NewAuth(log.Logger, facade, creds, validate)
	meetups := controller.NewMeetups(log.Logger, facade)
	createMeetup := controller.NewCreateMeetup(log.Logger, facade)
	invites := controller.NewInvites(log.Logger, facade)
	profile := controller.NewProfile(log.Logger, facade)

	auth.Restore()

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: meetapp login <login> <password>")
		}
		auth.Login(ctx, args[1], args[2])
		state := auth.State().Get()
		switch state.Phase {
		case controller.PhaseSuccess:
			fmt.Printf("Logged in as %s (id %d)\n", state.Data.UserName, state.Data.UserID)
		default:
			return fmt.Errorf("login failed: %s", state.Message)
		}

	case "logout":
		auth.Logout()
		fmt.Println("Logged out")

	case "register":
		if len(args) != 5 {
			return fmt.Errorf("usage: meetapp register <name> <login> <password> <department>")
		}
		auth.Register(ctx, model.PersonRegistration{
			Name:       args[1],
			Login:      args[2],
			Password:   args[3],
			Department: args[4],
		})
		state := auth.RegisterState().Get()
		if state.Phase != controller.PhaseSuccess {
			return fmt.Errorf("registration failed: %s", state.Message)
		}
		fmt.Printf("Registered %s (id %d)\n", state.Data.Login, state.Data.ID)

	case "meetups":
		if len(args) > 1 && args[1] == "--mine" {
			meetups.LoadMine(ctx)
		} else {
			meetups.LoadAll(ctx)
		}
		state := meetups.State().Get()
		if state.Phase != controller.PhaseSuccess {
			return fmt.Errorf("failed to load meetups: %s", state.Message)
		}
		for _, m := range state.Data {
			fmt.Printf("#%d %s — планирует %s, приглашено %d\n",
				m.ID, util.FormatDateTime(m.Date, m.Time), m.Planner.Name, len(m.Invites))
		}

	case "create":
		if len(args) < 3 {
			return fmt.Errorf("usage: meetapp create <yyyy-MM-dd> <HH:mm> [participant id...]")
		}
		createMeetup.LoadUsers(ctx)
		for _, raw := range args[3:] {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid participant id %q", raw)
			}
			createMeetup.ToggleUser(id)
		}
		createMeetup.CreateWithInvites(ctx, args[1], args[2])
		state := createMeetup.State().Get()
		if state.ErrorMessage != "" {
			return fmt.Errorf("failed to create meetup: %s", state.ErrorMessage)
		}
		fmt.Printf("Created meetup #%d on %s\n", state.CreatedMeetup.ID, util.FormatDateTime(state.CreatedMeetup.Date, state.CreatedMeetup.Time))
		if report := state.InviteReport; report != nil {
			fmt.Printf("Invites sent: %d\n", len(report.Succeeded))
			for uid, reason := range report.Failed {
				fmt.Printf("Invite for participant %d failed: %s\n", uid, reason)
			}
		}

	case "invites":
		invites.Load(ctx)
		state := invites.State().Get()
		if state.ErrorMessage != "" {
			return fmt.Errorf("failed to load invites: %s", state.ErrorMessage)
		}
		for _, inv := range state.Invites {
			status := "ожидает ответа"
			if inv.Agree != nil {
				if *inv.Agree {
					status = "принято"
				} else {
					status = "отклонено"
				}
			}
			fmt.Printf("#%d %s от %s — %s\n", inv.ID,
				util.FormatDateTime(inv.Meetup.Date, inv.Meetup.Time), inv.Meetup.Planner.Name, status)
			notifier.Show(notify.MeetupInvite(inv.Meetup.Planner.Name, inv.Meetup.Date, inv.Meetup.Time))
		}

	case "respond":
		if len(args) != 3 || (args[2] != "accept" && args[2] != "decline") {
			return fmt.Errorf("usage: meetapp respond <invite id> <accept|decline>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid invite id %q", args[1])
		}
		invites.Load(ctx)
		invites.Respond(ctx, id, args[2] == "accept")
		state := invites.State().Get()
		if state.ErrorMessage != "" {
			return fmt.Errorf("failed to respond: %s", state.ErrorMessage)
		}
		fmt.Println("Response sent")

	case "profile":
		if len(args) == 4 && args[1] == "set" {
			profile.Load(ctx)
			profile.Update(ctx, args[2], args[3])
			state := profile.State().Get()
			if state.ErrorMessage != "" {
				return fmt.Errorf("failed to update profile: %s", state.ErrorMessage)
			}
			fmt.Println("Profile updated")
			return nil
		}
		profile.Load(ctx)
		state := profile.State().Get()
		if state.ErrorMessage != "" {
			return fmt.Errorf("failed to load profile: %s", state.ErrorMessage)
		}
		person := state.Person
		department := ""
		if person.Department != nil {
			department = *person.Department
		}
		fmt.Printf("%s (@%s), отдел: %s\n", person.Name, person.Login, department)
		for _, m := range state.OrganizedMeetups {
			fmt.Printf("  митап #%d %s\n", m.ID, util.FormatDateTime(m.Date, m.Time))
		}

	case "departments":
		departments, err := facade.Gateway().ListDepartments(ctx)
		if err != nil {
			return fmt.Errorf("failed to load departments: %w", err)
		}
		for _, d := range departments {
			if d.ID != nil {
				fmt.Printf("#%d %s\n", *d.ID, d.Name)
			} else {
				fmt.Println(d.Name)
			}
		}

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}

func usage() {
	fmt.Println(`meetapp — клиент для планирования митапов

Commands:
  login <login> <password>
  logout
  register <name> <login> <password> <department>
  meetups [--mine]
  create <yyyy-MM-dd> <HH:mm> [participant id...]
  invites
  respond <invite id> <accept|decline>
  profile [set <name> <department>]
  departments`)
}
