package xbrl

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ArchiveLink is one discovered bulk-data archive: its absolute URL and the
// metadata recoverable from its filename alone (spec §2 — "Companies House
// publishes daily, monthly and yearly bulk archives").
type ArchiveLink struct {
	URL       string
	Filename  string
	Frequency string
	Start     time.Time
	End       time.Time
}

// The three bulk-archive naming schemes published at
// download.companieshouse.gov.uk (spec §6): a single day
// (Accounts_Bulk_Data-2024-01-15.zip), a single named month
// (Accounts_Monthly_Data-July2022.zip) and a full calendar year, spelled
// either abbreviated (Accounts_Monthly_Data-JanToDec2022.zip) or in full
// (Accounts_Monthly_Data-JanuaryToDecember2022.zip).
var (
	bulkDailyPattern    = regexp.MustCompile(`^Accounts_Bulk_Data-(\d{4}-\d{2}-\d{2})\.zip$`)
	monthlyYearPattern  = regexp.MustCompile(`^Accounts_Monthly_Data-(JanToDec|JanuaryToDecember)(\d{4})\.zip$`)
	monthlyMonthPattern = regexp.MustCompile(`^Accounts_Monthly_Data-([A-Za-z]+)(\d{4})\.zip$`)
)

// monthNumbers maps the full English month name to its 1-based number, the
// only spelling spec §6's Accounts_Monthly_Data-<MonthName><YYYY> convention
// uses.
var monthNumbers = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

// DiscoverArchives walks an index page's anchor tags, as served at
// http://download.companieshouse.gov.uk/en_accountsdata.html, and returns
// every ".zip" link resolved against base (spec §2, grounded on
// schedule13_html.go's DOM-walk idiom rather than a BeautifulSoup
// translation).
func DiscoverArchives(root *html.Node, base string) ([]ArchiveLink, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	var links []ArchiveLink
	forEachElement(root, func(n *html.Node) {
		if localName(n) != "a" {
			return
		}
		href := attrValue(n, "href")
		if !strings.HasSuffix(href, ".zip") {
			return
		}
		resolved := resolveHref(baseURL, href)
		link, ok := parseArchiveFilename(resolved)
		if ok {
			links = append(links, link)
		}
	})
	return links, nil
}

func resolveHref(base *url.URL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if rel, err := url.Parse(href); err == nil {
		return base.ResolveReference(rel).String()
	}
	return href
}

func parseArchiveFilename(rawURL string) (ArchiveLink, bool) {
	filename := rawURL
	if i := strings.LastIndexByte(rawURL, '/'); i >= 0 {
		filename = rawURL[i+1:]
	}

	if m := bulkDailyPattern.FindStringSubmatch(filename); m != nil {
		d, err := time.Parse("2006-01-02", m[1])
		if err != nil {
			return ArchiveLink{}, false
		}
		return ArchiveLink{URL: rawURL, Filename: filename, Frequency: "daily", Start: d, End: d}, true
	}

	if m := monthlyYearPattern.FindStringSubmatch(filename); m != nil {
		year, err := strconv.Atoi(m[2])
		if err != nil {
			return ArchiveLink{}, false
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		return ArchiveLink{URL: rawURL, Filename: filename, Frequency: "yearly", Start: start, End: end}, true
	}

	if m := monthlyMonthPattern.FindStringSubmatch(filename); m != nil {
		month, ok := monthNumbers[m[1]]
		if !ok {
			return ArchiveLink{}, false
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			return ArchiveLink{}, false
		}
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		end := lastDayOfMonth(year, month)
		return ArchiveLink{URL: rawURL, Filename: filename, Frequency: "monthly", Start: start, End: end}, true
	}

	return ArchiveLink{}, false
}

// lastDayOfMonth returns the final calendar day of the given month, used to
// compute a named-month archive's inclusive end date (spec §5, §9 —
// FilterByCutoff needs a span, not a single date, to know whether an
// archive can contain anything after a cutoff).
func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// FilterByCutoff keeps only archives whose span could contain a document
// dated strictly after cutoff (spec §5, §9 — "strict end_date > cutoff").
func FilterByCutoff(links []ArchiveLink, cutoff time.Time) []ArchiveLink {
	var kept []ArchiveLink
	for _, l := range links {
		if l.End.After(cutoff) {
			kept = append(kept, l)
		}
	}
	return kept
}

func (l ArchiveLink) String() string {
	return fmt.Sprintf("%s [%s %s..%s]", l.Filename, l.Frequency, l.Start.Format("2006-01-02"), l.End.Format("2006-01-02"))
}
