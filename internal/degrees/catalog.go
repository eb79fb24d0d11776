package degrees

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"cap2vivo/internal/wordset"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

var nonWord = regexp.MustCompile(`\W`)

// Entry is one standard degree from the reference graph.
type Entry struct {
	Abbreviation string
	Label        string
	URI          string

	// projections computed once at load time
	acronym string
	words   map[string]struct{}
}

// Catalog is the read-only reference set of standard academic degrees.
// It is built once at process start and never mutated per profile, so it is
// safe to share across concurrent mapper instances. Entries keep the file
// order of the reference graph, which keeps resolver output deterministic.
type Catalog struct {
	entries []Entry
	byAbbr  map[string]Entry
}

// Load reads the bundled reference graph, falling back to a one-shot fetch
// of the remote authoritative graph. An empty catalog is fatal: nothing can
// resolve degrees without it.
func Load(catalogFile, remoteURL string) (*Catalog, error) {
	data, err := os.ReadFile(catalogFile)
	if err != nil {
		log.Warnf("bundled degree catalog %s unavailable, fetching %s", catalogFile, remoteURL)
		data, err = fetchRemote(remoteURL)
		if err != nil {
			return nil, fmt.Errorf("degree catalog unavailable: %w", err)
		}
	}
	return Parse(data)
}

func fetchRemote(remoteURL string) ([]byte, error) {
	resp, err := http.Get(remoteURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching degree catalog: status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Parse builds the catalog from a JSON-LD reference graph of degree
// individuals carrying rdfs:label and vivo:abbreviation.
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{byAbbr: make(map[string]Entry)}

	items := gjson.GetBytes(data, `\@graph`)
	items.ForEach(func(_, item gjson.Result) bool {
		abbr := item.Get(`vivo:abbreviation`).String()
		label := item.Get(`rdfs:label`).String()
		uri := item.Get(`\@id`).String()
		if abbr == "" || uri == "" {
			return true
		}

		entry := Entry{
			Abbreviation: abbr,
			Label:        label,
			URI:          uri,
			acronym:      strings.ToUpper(nonWord.ReplaceAllString(abbr, "")),
			words:        wordset.Wordset(wordset.SplitWords(label)),
		}
		if _, dup := c.byAbbr[abbr]; !dup {
			c.entries = append(c.entries, entry)
			c.byAbbr[abbr] = entry
		}
		return true
	})

	if len(c.entries) == 0 {
		return nil, errors.New("degree catalog is empty")
	}
	log.Debugf("loaded %d degrees into the catalog", len(c.entries))
	return c, nil
}

// Len is the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the catalog entry for an exact abbreviation.
func (c *Catalog) Lookup(abbrev string) (Entry, bool) {
	e, ok := c.byAbbr[abbrev]
	return e, ok
}

// URIFor returns the degree URI for an exact abbreviation.
func (c *Catalog) URIFor(abbrev string) (string, bool) {
	e, ok := c.byAbbr[abbrev]
	return e.URI, ok
}
