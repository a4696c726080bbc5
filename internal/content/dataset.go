package content

import (
	"bytes"
	"embed"
	"encoding/hex"
	"io"
	"strings"

	"solana-patterns/internal/models"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

//go:embed data/patterns.yaml data/site.yaml
var bundled embed.FS

const defaultLanguage = "rust"

var (
	ErrDuplicateID  = errors.New("duplicate pattern id")
	ErrEmptyDataset = errors.New("dataset has no patterns")
)

// Dataset — неизменяемый набор паттернов и текстов сайта.
// Собирается один раз при старте и передаётся по указателю.
type Dataset struct {
	patterns    []models.SecurityPattern
	site        models.Site
	fingerprint string
}

// Load — датасет, вшитый в бинарник
func Load() (*Dataset, error) {
	patternsRaw, err := bundled.ReadFile("data/patterns.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "read bundled patterns")
	}
	siteRaw, err := bundled.ReadFile("data/site.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "read bundled site content")
	}
	return Parse(patternsRaw, siteRaw)
}

type patternsFile struct {
	Patterns []models.SecurityPattern `yaml:"patterns"`
}

// Parse разбирает YAML паттернов и сайта и собирает датасет через New.
func Parse(patternsRaw, siteRaw []byte) (*Dataset, error) {
	var pf patternsFile
	if err := decodeStrict(patternsRaw, &pf); err != nil {
		return nil, errors.Wrap(err, "decode patterns")
	}

	var site models.Site
	if err := decodeStrict(siteRaw, &site); err != nil {
		return nil, errors.Wrap(err, "decode site content")
	}

	return New(pf.Patterns, site)
}

func decodeStrict(raw []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// New проверяет записи и собирает датасет.
// Падает на пустом наборе, повторном id и неизвестной severity.
func New(patterns []models.SecurityPattern, site models.Site) (*Dataset, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyDataset
	}

	validate := validator.New()
	seen := make(map[string]int, len(patterns))
	out := make([]models.SecurityPattern, 0, len(patterns))

	for i, p := range patterns {
		p = p.Clone()
		p.ID = strings.TrimSpace(p.ID)

		if _, err := models.ParseSeverity(string(p.Severity)); err != nil {
			return nil, errors.Wrapf(err, "pattern %q (#%d)", p.ID, i)
		}
		if first, dup := seen[p.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "%q at #%d and #%d", p.ID, first, i)
		}
		if err := validate.Struct(p); err != nil {
			return nil, errors.Wrapf(err, "pattern %q (#%d)", p.ID, i)
		}
		if p.Language == "" {
			p.Language = defaultLanguage
		}

		seen[p.ID] = i
		out = append(out, p)
	}

	if err := validate.Struct(site); err != nil {
		return nil, errors.Wrap(err, "site content")
	}

	fp, err := fingerprint(out, site)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		patterns:    out,
		site:        site.Clone(),
		fingerprint: fp,
	}, nil
}

// fingerprint — blake2b от нормализованного содержимого, идёт в ETag
func fingerprint(patterns []models.SecurityPattern, site models.Site) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", errors.Wrap(err, "init blake2b")
	}
	enc := yaml.NewEncoder(h)
	if err := enc.Encode(patterns); err != nil {
		return "", errors.Wrap(err, "hash patterns")
	}
	if err := enc.Encode(site); err != nil {
		return "", errors.Wrap(err, "hash site content")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "hash content")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (d *Dataset) Len() int { return len(d.patterns) }

func (d *Dataset) Site() models.Site { return d.site.Clone() }

func (d *Dataset) Fingerprint() string { return d.fingerprint }

// All — все паттерны в объявленном порядке
func (d *Dataset) All() []models.SecurityPattern {
	out := make([]models.SecurityPattern, len(d.patterns))
	for i, p := range d.patterns {
		out[i] = p.Clone()
	}
	return out
}

// Head — первые n паттернов (для перекрёстных ссылок в Deep Dive)
func (d *Dataset) Head(n int) []models.SecurityPattern {
	all := d.All()
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// Find — первый паттерн с таким id. false — "не найдено", это не ошибка.
func (d *Dataset) Find(id string) (models.SecurityPattern, bool) {
	i := d.position(id)
	if i < 0 {
		return models.SecurityPattern{}, false
	}
	return d.patterns[i].Clone(), true
}

// Neighbors — соседи по порядку датасета, без закольцовывания.
// Для неизвестного id оба nil.
func (d *Dataset) Neighbors(id string) (prev, next *models.SecurityPattern) {
	i := d.position(id)
	if i < 0 {
		return nil, nil
	}
	if i > 0 {
		p := d.patterns[i-1].Clone()
		prev = &p
	}
	if i+1 < len(d.patterns) {
		n := d.patterns[i+1].Clone()
		next = &n
	}
	return prev, next
}

func (d *Dataset) position(id string) int {
	for i := range d.patterns {
		if d.patterns[i].ID == id {
			return i
		}
	}
	return -1
}
