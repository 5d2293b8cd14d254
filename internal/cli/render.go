package cli

import (
	"fmt"
	"text/tabwriter"

	"entrega-tracker/internal/domain"
)

func (a *App) renderList(list []domain.Delivery) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "no deliveries")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECEIVER\tCITY\tSTATUS")
	for _, d := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s/%s\t%s\n",
			d.ID, d.Receiver, d.Address.City, d.Address.State, d.Status)
	}
	tw.Flush() //nolint:errcheck
}

func (a *App) renderDetails(d *domain.Delivery, coord *domain.GeoCoordinate) {
	fmt.Fprintf(a.out, "delivery %d (%s)\n", d.ID, d.Status)
	fmt.Fprintf(a.out, "receiver:    %s\n", d.Receiver)
	fmt.Fprintf(a.out, "address:     %s, %s", d.Address.Street, d.Address.Number)
	if d.Address.Complement != "" {
		fmt.Fprintf(a.out, " (%s)", d.Address.Complement)
	}
	fmt.Fprintf(a.out, "\n             %s, %s - %s, %s\n",
		d.Address.Neighborhood, d.Address.City, d.Address.State, d.Address.CEP)
	if d.Description != "" {
		fmt.Fprintf(a.out, "description: %s\n", d.Description)
	}
	if coord != nil {
		fmt.Fprintf(a.out, "position:    %.6f, %.6f\n", coord.Latitude, coord.Longitude)
	}
	if d.Completed() {
		fmt.Fprintf(a.out, "received by: %s (%s), CPF %s\n",
			d.Proof.ReceivedBy, d.Proof.Relation, d.Proof.CPFReceiver)
		fmt.Fprintf(a.out, "photo:       %s\n", d.Proof.PhotoURL)
	}
}
