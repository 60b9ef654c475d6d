package xbrl

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// version is embedded in the contact User-Agent every request carries.
	version = "0.1.0"

	// ChEmailEnvVar names the environment variable holding the contact
	// email Companies House asks bulk downloaders to identify themselves
	// with.
	ChEmailEnvVar = "CH_EMAIL"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// GetContactEmail retrieves the contact email from the environment.
func GetContactEmail() (string, error) {
	email := os.Getenv(ChEmailEnvVar)
	if email == "" {
		return "", fmt.Errorf("contact email required: set %s environment variable", ChEmailEnvVar)
	}
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("invalid email format: %s", email)
	}
	return email, nil
}

// BuildUserAgent builds the contact User-Agent header sent with every
// bulk-download request.
func BuildUserAgent(email string) string {
	return fmt.Sprintf("stream-read-xbrl/%s (%s)", version, email)
}

// Fetcher downloads bulk archives at a bounded rate, identifying itself
// with a contact email (spec §2, §5).
type Fetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
	email   string
}

// NewFetcher builds a Fetcher that allows at most one request per interval.
func NewFetcher(email string, interval time.Duration) *Fetcher {
	return &Fetcher{
		client:  resty.New().SetTimeout(2 * time.Minute),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		email:   email,
	}
}

// FetchArchive downloads one archive's full bytes, blocking on the rate
// limiter before issuing the request.
func (f *Fetcher) FetchArchive(ctx context.Context, archiveURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", BuildUserAgent(f.email)).
		SetDoNotParseResponse(true).
		Get(archiveURL)
	if err != nil {
		log.Error().Err(err).Str("url", archiveURL).Msg("xbrl: archive fetch failed")
		return nil, err
	}
	body := resp.RawBody()
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading archive body: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("companies house returned status %d for %s", resp.StatusCode(), archiveURL)
	}
	return data, nil
}

// FetchIndexPage downloads the bulk-data index page listing every
// published archive (spec §2, §5).
func (f *Fetcher) FetchIndexPage(ctx context.Context, indexURL string) ([]byte, error) {
	return f.FetchArchive(ctx, indexURL)
}
