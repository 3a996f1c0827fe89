package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedNamespace keeps demo ids stable so seeding twice is a no-op.
var seedNamespace = uuid.MustParse("6f1c2a9e-5d0b-4c4e-9a57-1f1f6f3c2b10")

func seedID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(name))
}

type seedBrand struct {
	name, company, email string
}

type seedCampaign struct {
	brand, title, description, category, requirements string
	budget                                            float64
	deadlineInDays                                    int
}

type seedEvent struct {
	title, description, location string
	price                        float64
	capacity                     int
	inDays                       int
}

var (
	seedBrands = []seedBrand{
		{name: "Neha Kapoor", company: "Glow Botanics", email: "neha@glowbotanics.in"},
		{name: "Arjun Mehta", company: "Pixel Gadgets", email: "arjun@pixelgadgets.in"},
	}
	seedCreators = []struct{ name, email, niche string }{
		{name: "Riya Sharma", email: "riya@creators.in", niche: "beauty"},
		{name: "Kabir Singh", email: "kabir@creators.in", niche: "tech"},
	}
	seedCampaigns = []seedCampaign{
		{brand: "Glow Botanics", title: "Monsoon Skincare Reels", category: "beauty", budget: 25000, deadlineInDays: 30,
			description: "Three short reels showing the monsoon skincare routine.", requirements: "10k+ followers, Hindi or English"},
		{brand: "Glow Botanics", title: "Festive Gift Box Unboxing", category: "lifestyle", budget: 15000, deadlineInDays: 45,
			description: "Unboxing video of the festive gift box with a discount code."},
		{brand: "Pixel Gadgets", title: "Budget Earbuds Review", category: "tech", budget: 40000, deadlineInDays: 21,
			description: "Honest long-form review plus one short.", requirements: "Tech niche, Tier 2 audience welcome"},
	}
	seedEvents = []seedEvent{
		{title: "Creator Connect Jaipur", location: "Bhamasha Techno Hub, Jaipur", price: 499, capacity: 150, inDays: 20,
			description: "An evening of brand meetups and creator workshops."},
		{title: "UGC Masterclass", location: "Online", price: 0, capacity: 500, inDays: 35,
			description: "Hands-on session on scripting and shooting UGC ads."},
	}
)

// Seed inserts demo brands, creators, campaigns and events. Rows are keyed by
// stable ids and inserted with ON CONFLICT DO NOTHING, so it can run on every
// start.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for _, b := range seedBrands {
			if _, err := tx.Exec(ctx, `INSERT INTO profiles (id, email, full_name, company_name, user_type)
VALUES ($1,$2,$3,$4,'brand') ON CONFLICT DO NOTHING`,
				seedID(b.email), b.email, b.name, b.company); err != nil {
				return fmt.Errorf("seed brand %s: %w", b.company, err)
			}
		}
		for _, c := range seedCreators {
			if _, err := tx.Exec(ctx, `INSERT INTO profiles (id, email, full_name, user_type, niche)
VALUES ($1,$2,$3,'creator',$4) ON CONFLICT DO NOTHING`,
				seedID(c.email), c.email, c.name, c.niche); err != nil {
				return fmt.Errorf("seed creator %s: %w", c.name, err)
			}
		}

		brandIDs := make(map[string]uuid.UUID, len(seedBrands))
		for _, b := range seedBrands {
			brandIDs[b.company] = seedID(b.email)
		}
		today := time.Now().UTC().Truncate(24 * time.Hour)
		for _, c := range seedCampaigns {
			var requirements *string
			if c.requirements != "" {
				requirements = &c.requirements
			}
			if _, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, brand_id, title, description, budget, category, deadline, requirements, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'active') ON CONFLICT DO NOTHING`,
				seedID("campaign:"+c.title), brandIDs[c.brand], c.title, c.description, c.budget, c.category,
				today.AddDate(0, 0, c.deadlineInDays), requirements); err != nil {
				return fmt.Errorf("seed campaign %s: %w", c.title, err)
			}
		}

		for _, e := range seedEvents {
			if _, err := tx.Exec(ctx, `INSERT INTO events (id, title, description, event_date, location, price, capacity)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
				seedID("event:"+e.title), e.title, e.description, today.AddDate(0, 0, e.inDays).Add(18*time.Hour),
				e.location, e.price, e.capacity); err != nil {
				return fmt.Errorf("seed event %s: %w", e.title, err)
			}
		}
		return nil
	})
}
