package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calegray/facade/internal/model"
)

var addFlags struct {
	id           string
	jurisdiction string
	address      string
	buildingID   string
	parcelID     string
	borough      string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a property for compliance tracking",
	RunE:  runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVar(&addFlags.id, "id", "", "Property ID (required)")
	f.StringVar(&addFlags.jurisdiction, "jurisdiction", "nyc", "Jurisdiction (nyc, philadelphia)")
	f.StringVar(&addFlags.address, "address", "", "Street address (required)")
	f.StringVar(&addFlags.buildingID, "building-id", "", "Known building identifier (e.g. NYC BIN)")
	f.StringVar(&addFlags.parcelID, "parcel-id", "", "Known parcel identifier (e.g. NYC BBL)")
	f.StringVar(&addFlags.borough, "borough", "", "Borough or region")

	_ = addCmd.MarkFlagRequired("id")
	_ = addCmd.MarkFlagRequired("address")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	p := model.Property{
		ID:           addFlags.id,
		Jurisdiction: model.Jurisdiction(addFlags.jurisdiction),
		Address:      addFlags.address,
		BuildingID:   addFlags.buildingID,
		ParcelID:     addFlags.parcelID,
		Borough:      addFlags.borough,
	}
	if err := svc.AddProperty(cmd.Context(), p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", p.ID, p.Address)
	return nil
}
