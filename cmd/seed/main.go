// Command seed fills a running globetrek instance with fake tourist spots
// through the public API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-playground/validator/v10"
)

var (
	baseURL = flag.String("url", env("API_BASE_URL", "http://localhost:8080"), "Server base URL")
	email   = flag.String("email", env("EMAIL", "demo@example.com"), "Owner e-mail for the seeded spots")
	nSpots  = flag.Int("n", envInt("COUNT", 50), "How many spots to create")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func postJSON(path string, body any) (*http.Response, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, *baseURL+path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

func drain(body io.ReadCloser) []byte {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return data
}

var seasons = []string{"spring", "summer", "autumn", "winter", "year-round"}

// seedSpot mirrors the create payload. The server accepts anything, so the
// seeder validates its own output instead.
type seedSpot struct {
	SpotName             string  `json:"spot_name" validate:"required"`
	CountryName          string  `json:"country_name" validate:"required"`
	Location             string  `json:"location" validate:"required"`
	Details              string  `json:"details" validate:"required"`
	AverageCost          float64 `json:"average_cost" validate:"gt=0"`
	TotalVisitorsPerYear int64   `json:"total_visitors_per_year" validate:"gt=0"`
	Seasonality          string  `json:"seasonality" validate:"required"`
	TravelTime           string  `json:"travel_time" validate:"required"`
	UserEmail            string  `json:"userEmail" validate:"required,email"`
}

func fakeSpot(owner string) seedSpot {
	return seedSpot{
		SpotName:             gofakeit.City() + " " + gofakeit.NounConcrete(),
		CountryName:          gofakeit.Country(),
		Location:             gofakeit.City(),
		Details:              gofakeit.Paragraph(1, 3, 12, " "),
		AverageCost:          float64(gofakeit.Number(100, 5000)),
		TotalVisitorsPerYear: int64(gofakeit.Number(10000, 5000000)),
		Seasonality:          seasons[gofakeit.Number(0, len(seasons)-1)],
		TravelTime:           fmt.Sprintf("%d days", gofakeit.Number(1, 21)),
		UserEmail:            owner,
	}
}

func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	fmt.Printf("Seeding %d tourist spots for %s on %s\n", *nSpots, *email, *baseURL)

	validate := validator.New(validator.WithRequiredStructEnabled())

	created := 0
	for i := 0; i < *nSpots; i++ {
		spot := fakeSpot(*email)
		if err := validate.Struct(spot); err != nil {
			fmt.Fprintln(os.Stderr, "FATAL: generated payload invalid:", err)
			os.Exit(1)
		}
		resp, err := postJSON("/tourist-spot", spot)
		if err != nil {
			fmt.Fprintln(os.Stderr, "FATAL:", err)
			os.Exit(1)
		}
		body := drain(resp.Body)
		if resp.StatusCode != http.StatusCreated {
			fmt.Fprintf(os.Stderr, "FATAL: unexpected status %d: %s\n", resp.StatusCode, body)
			os.Exit(1)
		}
		created++
	}

	fmt.Printf("Done, created %d spots\n", created)
}
