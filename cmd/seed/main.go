// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/urbangreen-dev/plantstore/internal/auth"
	"github.com/urbangreen-dev/plantstore/internal/config"
	"github.com/urbangreen-dev/plantstore/internal/core"
	"github.com/urbangreen-dev/plantstore/internal/middleware"
	"github.com/urbangreen-dev/plantstore/internal/plant"
	"github.com/urbangreen-dev/plantstore/internal/user"
)

const stockImage = "https://images.unsplash.com/photo-1593482276921-655f2d715696?w=400&h=400&fit=crop"

type seedPlant struct {
	name       string
	price      float64
	categories []string
	profile    string
}

var seedPlants = []seedPlant{
	{"Snake Plant", 300, []string{"Indoor", "Air Purifying"}, stockImage},
	{"Money Plant", 250, []string{"Indoor", "Decorative"}, stockImage},
	{"Aloe Vera", 150, []string{"Medicinal", "Succulent"}, stockImage},
	{"Tulsi", 100, []string{"Medicinal"}, stockImage},
	{"Rose", 200, []string{"Flowering", "Outdoor"}, stockImage},
	{"Jasmine", 300, []string{"Flowering", "Outdoor"}, stockImage},
	{"Lavender", 150, []string{"Medicinal"}, stockImage},
	{"Lily", 250, []string{"Flowering", "Outdoor"}, stockImage},
	{"Tulip", 100, []string{"Flowering", "Outdoor"}, stockImage},
	{"Carnation", 200, []string{"Flowering", "Outdoor"}, stockImage},
	{"Daffodil", 150, []string{"Flowering", "Outdoor"}, stockImage},
	{"Daisy", 100, []string{"Flowering", "Outdoor"}, stockImage},
	{"Sunflower", 250, []string{"Flowering", "Outdoor"}, stockImage},
	{"Orchid", 300, []string{"Flowering", "Outdoor"}, stockImage},
	{"Lily of the Valley", 150, []string{"Flowering", "Outdoor"}, stockImage},
	{"Peace Lily", 220, []string{"Indoor", "Air Purifying"}, stockImage},
	{"Spider Plant", 180, []string{"Indoor", "Air Purifying"}, stockImage},
	{"Rubber Plant", 350, []string{"Indoor", "Decorative"}, stockImage},
	{"Fiddle Leaf Fig", 400, []string{"Indoor", "Decorative"}, stockImage},
	{"Pothos", 120, []string{"Indoor", "Air Purifying"}, stockImage},
	{"ZZ Plant", 280, []string{"Indoor", "Low Maintenance"}, stockImage},
	{"Cactus", 90, []string{"Succulent", "Low Maintenance"}, stockImage},
	{"Succulent", 80, []string{"Succulent", "Indoor"}, stockImage},
	{"Bamboo", 150, []string{"Indoor", "Decorative"}, stockImage},
	{"Ivy", 130, []string{"Indoor", "Climbing"}, stockImage},
	{"Fern", 160, []string{"Indoor", "Decorative"}, stockImage},
	{"Bonsai", 500, []string{"Indoor", "Decorative"}, stockImage},
	{"Calathea", 270, []string{"Indoor", "Decorative"}, stockImage},
	{"Monstera", 380, []string{"Indoor", "Decorative"}, stockImage},
	{"Philodendron", 220, []string{"Indoor", "Air Purifying"}, stockImage},
	{"Basil", 70, []string{"Herb", "Culinary"}, stockImage},
	{"Mint", 75, []string{"Herb", "Culinary"}, stockImage},
	{"Rosemary", 85, []string{"Herb", "Culinary"}, stockImage},
	{"Thyme", 80, []string{"Herb", "Culinary"}, stockImage},
	{"Sage", 90, []string{"Herb", "Medicinal"}, stockImage},
	{"Oregano", 75, []string{"Herb", "Culinary"}, stockImage},
	{"Chrysanthemum", 180, []string{"Flowering", "Outdoor"}, stockImage},
	{"Marigold", 110, []string{"Flowering", "Outdoor"}, stockImage},
	{"Hydrangea", 320, []string{"Flowering", "Outdoor"}, stockImage},
	{"Peony", 280, []string{"Flowering", "Outdoor"}, stockImage},
	{"Dahlia", 190, []string{"Flowering", "Outdoor"}, stockImage},
	{"Zinnia", 120, []string{"Flowering", "Outdoor"}, stockImage},
	{"Pansy", 100, []string{"Flowering", "Outdoor"}, stockImage},
	{"Petunia", 110, []string{"Flowering", "Outdoor"}, stockImage},
	{"Geranium", 130, []string{"Flowering", "Outdoor"}, stockImage},
	{"Begonia", 140, []string{"Flowering", "Outdoor"}, stockImage},
	{"Azalea", 260, []string{"Flowering", "Outdoor"}, stockImage},
	{"Camellia", 300, []string{"Flowering", "Outdoor"}, stockImage},
	{"Magnolia", 450, []string{"Flowering", "Outdoor"}, stockImage},
	{"Hibiscus", 220, []string{"Flowering", "Outdoor"}, stockImage},
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	admin, err := ensureAdmin(ctx, db)
	if err != nil {
		return err
	}
	logger.Info("admin account ready", "email", admin.Email)

	if _, err := db.DB.ExecContext(ctx, `DELETE FROM plants`); err != nil {
		return fmt.Errorf("clear plants: %w", err)
	}

	identity := &middleware.Identity{ID: admin.ID, Role: admin.Role}
	plantSvc := plant.NewService(plant.NewRepository(db.DB), nil)

	for _, sp := range seedPlants {
		req := plant.CreatePlantRequest{
			Name:       sp.name,
			Price:      sp.price,
			Categories: sp.categories,
			Profile:    sp.profile,
		}
		if _, err := plantSvc.Create(ctx, identity, req); err != nil {
			return fmt.Errorf("seed %q: %w", sp.name, err)
		}
	}

	logger.Info("catalog seeded", "plants", len(seedPlants))
	return nil
}

// ensureAdmin creates the bootstrap admin account when it does not already
// exist. Credentials come from SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD.
func ensureAdmin(
	ctx context.Context,
	db *core.Database,
) (*auth.UserInfo, error) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil, errors.New(
			"SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required",
		)
	}

	users := user.NewService(user.NewRepository(db.DB))

	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	hash, err := core.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return users.Create(ctx, auth.NewUser{
		Firstname:    "Admin",
		Lastname:     "Account",
		Age:          30,
		Role:         user.RoleAdmin,
		Email:        email,
		Gender:       "other",
		PasswordHash: hash,
		Pincode:      "110001",
	})
}
