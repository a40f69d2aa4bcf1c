// Command app is the terminal build of the FleetEase staff client. It wires
// the same core the mobile shell uses (secret store, API client, session
// manager, screen controllers) behind subcommands, one per screen action.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"fleetease/internal/app/controllers"
	"fleetease/internal/app/nav"
	"fleetease/internal/app/rest"
	"fleetease/internal/app/secrets"
	"fleetease/internal/app/session"
	"fleetease/internal/app/workflow"
	"fleetease/internal/config"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	session      *session.Manager
	auth         *rest.AuthService
	reservations *rest.ReservationService
	vehicles     *rest.VehicleService
	deliveries   *rest.DeliveryService
	returns      *rest.ReturnService
	gps          *rest.GPSService
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, err := secrets.New(cfg.Client.Platform, cfg.Client.DataDir)
	if err != nil {
		return fmt.Errorf("open secret store: %w", err)
	}

	client := rest.NewClient(cfg.Client.APIBaseURL, store)
	a := &app{
		auth:         rest.NewAuthService(client),
		reservations: rest.NewReservationService(client),
		vehicles:     rest.NewVehicleService(client),
		deliveries:   rest.NewDeliveryService(client),
		returns:      rest.NewReturnService(client),
		gps:          rest.NewGPSService(client),
	}
	a.session = session.NewManager(store, a.auth, logger)

	ctx := context.Background()
	a.session.Hydrate(ctx)

	switch cmd := args[0]; cmd {
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		a.session.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "dashboard":
		return a.dashboard(ctx)
	case "reservations":
		return a.listReservations(ctx, args[1:])
	case "vehicles":
		return a.listVehicles(ctx, args[1:])
	case "map":
		return a.showMap(ctx)
	case "deliver":
		return a.deliver(ctx, args[1:])
	case "return":
		return a.returnVehicle(ctx, args[1:])
	case "profile":
		return a.profile()
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: app <command> [flags]

commands:
  login         -email -password
  logout
  dashboard
  reservations  [-status] [-search]
  vehicles      [-search]
  map
  deliver       -reservation -km [-fuel] [-photo ...] [-notes] -kvkk
  return        -reservation -km [-fuel] [-photo ...] [-damage-photo ...] [-damage-notes] [-extra] [-notes]
  profile`)
}

func (a *app) requireSession() error {
	if a.session.State() != session.StateAuthenticated {
		return fmt.Errorf("not logged in, run: app login")
	}
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "staff email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("email and password are required")
	}
	if err := a.session.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", a.session.User().FullName, a.session.User().Role)
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	ctrl := controllers.NewDashboardController(a.reservations)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	s := ctrl.Stats()
	fmt.Printf("reservations: %d total, %d confirmed, %d delivered\n",
		s.TotalReservations, s.Confirmed, s.Delivered)
	fmt.Printf("today: %d deliveries, %d returns\n", s.TodayDeliveries, s.TodayReturns)
	for _, r := range ctrl.TodayWork() {
		fmt.Printf("  %s  %s  %s\n", r.ID, r.Status, nav.RouteForReservation(r.Status))
	}
	return nil
}

func (a *app) listReservations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reservations", flag.ExitOnError)
	status := fs.String("status", "", "status filter")
	search := fs.String("search", "", "search text")
	fs.Parse(args)

	if err := a.requireSession(); err != nil {
		return err
	}
	ctrl := controllers.NewReservationListController(a.reservations)
	ctrl.SetStatusFilter(*status)
	ctrl.SetSearch(*search)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tCUSTOMER\tVEHICLE\tSTART\tEND")
	for _, r := range ctrl.Items() {
		customer, vehicle := "-", "-"
		if r.Customer != nil {
			customer = r.Customer.FullName
		}
		if r.Vehicle != nil {
			vehicle = r.Vehicle.Plate
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Status, customer, vehicle,
			r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"))
	}
	return w.Flush()
}

func (a *app) listVehicles(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("vehicles", flag.ExitOnError)
	search := fs.String("search", "", "search text")
	fs.Parse(args)

	if err := a.requireSession(); err != nil {
		return err
	}
	ctrl := controllers.NewVehicleListController(a.vehicles)
	ctrl.SetSearch(*search)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATE\tBRAND\tMODEL\tYEAR\tSTATUS\tKM")
	for _, v := range ctrl.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\n",
			v.Plate, v.Brand, v.Model, v.Year, v.Status, v.Mileage)
	}
	return w.Flush()
}

func (a *app) showMap(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	ctrl := controllers.NewMapController(a.gps, a.vehicles)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	for _, m := range ctrl.Markers() {
		brand := "-"
		if m.Vehicle != nil {
			brand = m.Vehicle.Brand + " " + m.Vehicle.Model
		}
		fmt.Printf("%s  %s  %.5f,%.5f  %.0f km/h\n",
			m.Position.Plate, brand, m.Position.Latitude, m.Position.Longitude, m.Position.Speed)
	}
	return nil
}

type photoList []string

func (p *photoList) String() string { return fmt.Sprint([]string(*p)) }

func (p *photoList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func (a *app) deliver(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("deliver", flag.ExitOnError)
	reservation := fs.String("reservation", "", "reservation id")
	km := fs.String("km", "", "current km reading")
	fuel := fs.Int("fuel", 100, "fuel level (25, 50, 75, 100)")
	notes := fs.String("notes", "", "delivery notes")
	kvkk := fs.Bool("kvkk", false, "customer gave KVKK consent")
	var photos photoList
	fs.Var(&photos, "photo", "photo path, repeatable")
	fs.Parse(args)

	if err := a.requireSession(); err != nil {
		return err
	}
	ctrl := controllers.NewDeliveryController(a.reservations, a.deliveries, *reservation)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	form := ctrl.Form()
	form.KmReading = *km
	form.FuelLevel = workflow.FuelLevel(*fuel)
	form.Photos = photos
	form.Notes = *notes
	form.KvkkConsent = *kvkk

	delivery, err := ctrl.Submit(ctx)
	if err != nil {
		return fmt.Errorf("%s", ctrl.Notice())
	}
	fmt.Printf("delivery %s recorded at %s\n", delivery.ID, delivery.DeliveredAt.Format("15:04"))
	return nil
}

func (a *app) returnVehicle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("return", flag.ExitOnError)
	reservation := fs.String("reservation", "", "reservation id")
	km := fs.String("km", "", "current km reading")
	fuel := fs.Int("fuel", 100, "fuel level (25, 50, 75, 100)")
	damageNotes := fs.String("damage-notes", "", "damage description")
	extra := fs.Float64("extra", 0, "extra charges")
	notes := fs.String("notes", "", "return notes")
	var photos, damagePhotos photoList
	fs.Var(&photos, "photo", "photo path, repeatable")
	fs.Var(&damagePhotos, "damage-photo", "damage photo path, repeatable")
	fs.Parse(args)

	if err := a.requireSession(); err != nil {
		return err
	}
	ctrl := controllers.NewReturnController(a.reservations, a.returns, *reservation)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	form := ctrl.Form()
	form.KmReading = *km
	form.FuelLevel = workflow.FuelLevel(*fuel)
	form.Photos = photos
	form.Notes = *notes
	if len(damagePhotos) > 0 || *damageNotes != "" {
		form.HasDamage = true
		form.DamagePhotos = damagePhotos
		form.DamageNotes = *damageNotes
	}
	if *extra > 0 {
		form.ExtraCharges = extra
	}

	ret, err := ctrl.Submit(ctx)
	if err != nil {
		return fmt.Errorf("%s", ctrl.Notice())
	}
	fmt.Printf("return %s recorded at %s\n", ret.ID, ret.ReturnedAt.Format("15:04"))
	return nil
}

func (a *app) profile() error {
	if err := a.requireSession(); err != nil {
		return err
	}
	ctrl := controllers.NewProfileController(a.session)
	u := ctrl.User()
	fmt.Printf("%s\n%s\nrole: %s\n", u.FullName, u.Email, u.Role)
	if u.Phone != "" {
		fmt.Println(u.Phone)
	}
	fmt.Println(ctrl.Version())
	return nil
}
