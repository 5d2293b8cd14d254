package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/store"
	"entrega-tracker/internal/workflow/confirm"
)

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("%w: login requires --email and --password", errUsage)
	}

	userID, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.session.Login(userID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as user %d\n", userID)
	return nil
}

func (a *App) cmdLogout() error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) cmdList(ctx context.Context, args []string, keep func(domain.Delivery) bool) error {
	fs := newFlagSet("list")
	search := fs.String("search", "", "match receiver, city, neighborhood or state")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	list, err := a.store.Focus(ctx)
	if err != nil {
		if len(list) == 0 {
			return err
		}
		// Stale data beats no data: keep showing what the courier
		// last saw and say so.
		fmt.Fprintln(a.errOut, "warning: refresh failed, showing last known deliveries")
	}

	a.renderList(store.Filter(list, *search, keep))
	return nil
}

func (a *App) cmdCompleted(ctx context.Context, args []string) error {
	return a.cmdList(ctx, args, store.CompletedOnly)
}

func (a *App) cmdAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("add")
	var n domain.NewDelivery
	fs.StringVar(&n.Receiver, "receiver", "", "who the parcel is for")
	fs.StringVar(&n.Address.CEP, "cep", "", "postal code")
	fs.StringVar(&n.Address.Street, "street", "", "street")
	fs.StringVar(&n.Address.Number, "number", "", "street number")
	fs.StringVar(&n.Address.Complement, "complement", "", "address complement")
	fs.StringVar(&n.Address.Neighborhood, "neighborhood", "", "neighborhood")
	fs.StringVar(&n.Address.City, "city", "", "city")
	fs.StringVar(&n.Address.State, "state", "", "state")
	fs.StringVar(&n.Description, "description", "", "free-form description")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	if err := a.store.Create(ctx, n); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "delivery created for %s\n", n.Receiver)
	return nil
}

func (a *App) cmdShow(ctx context.Context, args []string) error {
	id, rest, err := idArg(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: show takes only a delivery id", errUsage)
	}

	w := a.workflow(id, "")
	if err := w.Load(ctx); err != nil {
		return err
	}

	a.renderDetails(w.Delivery(), w.Coordinate())
	return nil
}

func (a *App) cmdConfirm(ctx context.Context, args []string) error {
	id, rest, err := idArg(args)
	if err != nil {
		return err
	}

	fs := newFlagSet("confirm")
	receivedBy := fs.String("received-by", "", "who received the parcel")
	cpf := fs.String("cpf", "", "receiver's document number")
	relation := fs.String("relation", "", "receiver's relation to the addressee")
	photo := fs.String("photo", "", "path to the proof photo")
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	w := a.workflow(id, *photo)
	if err := w.Load(ctx); err != nil {
		return err
	}
	if w.Phase() == confirm.PhaseViewed {
		fmt.Fprintf(a.out, "delivery %d is already completed\n", id)
		return nil
	}

	if err := w.SetReceivedBy(*receivedBy); err != nil {
		return err
	}
	if err := w.SetCPFReceiver(*cpf); err != nil {
		return err
	}
	if err := w.SetRelation(*relation); err != nil {
		return err
	}
	if *photo != "" {
		if err := w.CapturePhoto(ctx); err != nil {
			return err
		}
	}

	if err := w.Confirm(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "delivery %d confirmed\n", id)
	return nil
}

func idArg(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: missing delivery id", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("%w: bad delivery id %q", errUsage, args[0])
	}
	return id, args[1:], nil
}
