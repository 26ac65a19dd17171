package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

const dateLayout = "2006-01-02"

// File is the TOML layout of a seed file. Amounts are decimal strings so
// cents survive the round trip.
type File struct {
	Goals        []GoalRecord        `toml:"goals" validate:"dive"`
	Transactions []TransactionRecord `toml:"transactions" validate:"dive"`
	Challenges   []ChallengeRecord   `toml:"challenges" validate:"dive"`
}

// GoalRecord is a [[goals]] table.
type GoalRecord struct {
	ID            string `toml:"id" validate:"required"`
	Title         string `toml:"title" validate:"required"`
	TargetAmount  string `toml:"target_amount" validate:"required,numeric"`
	CurrentAmount string `toml:"current_amount" validate:"omitempty,numeric"`
	Emoji         string `toml:"emoji,omitempty"`
	Deadline      string `toml:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionRecord is a [[transactions]] table.
type TransactionRecord struct {
	ID       string `toml:"id" validate:"required"`
	Title    string `toml:"title" validate:"required"`
	Amount   string `toml:"amount" validate:"required,numeric"`
	Category string `toml:"category" validate:"required"`
	Date     string `toml:"date" validate:"required,datetime=2006-01-02"`
	Type     string `toml:"type" validate:"required,oneof=income expense"`
}

// ChallengeRecord is a [[challenges]] table.
type ChallengeRecord struct {
	ID          string `toml:"id" validate:"required"`
	Title       string `toml:"title" validate:"required"`
	Description string `toml:"description"`
	Difficulty  string `toml:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	RewardXP    int    `toml:"reward_xp" validate:"gte=0"`
	Active      bool   `toml:"active"`
}

var validate = validator.New()

// Load reads a seed file from disk.
func Load(path string) (*entity.Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses and validates a TOML seed. Record format problems are
// reported as InvalidSeed; ledger invariants such as positive amounts are
// checked when the store is initialized.
func Decode(r io.Reader) (*entity.Seed, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, invalidSeed("parsing seed file", err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, invalidSeed(describe(err), err)
	}

	return file.toSeed()
}

// Encode writes the seed as TOML.
func Encode(w io.Writer, seed *entity.Seed) error {
	if err := toml.NewEncoder(w).Encode(fromSeed(seed)); err != nil {
		return fmt.Errorf("encoding seed file: %w", err)
	}
	return nil
}

func (f File) toSeed() (*entity.Seed, error) {
	seed := &entity.Seed{
		Goals:        make([]*entity.Goal, 0, len(f.Goals)),
		Transactions: make([]*entity.Transaction, 0, len(f.Transactions)),
		Challenges:   make([]*entity.Challenge, 0, len(f.Challenges)),
	}

	for _, g := range f.Goals {
		goal := &entity.Goal{
			ID:            g.ID,
			Title:         g.Title,
			TargetAmount:  decimal.RequireFromString(g.TargetAmount),
			CurrentAmount: decimal.Zero,
			Emoji:         g.Emoji,
		}
		if g.CurrentAmount != "" {
			goal.CurrentAmount = decimal.RequireFromString(g.CurrentAmount)
		}
		if g.Deadline != "" {
			deadline, err := time.Parse(dateLayout, g.Deadline)
			if err != nil {
				return nil, invalidSeed("goal "+g.ID+": deadline", err)
			}
			goal.Deadline = &deadline
		}
		seed.Goals = append(seed.Goals, goal)
	}

	for _, t := range f.Transactions {
		date, err := time.Parse(dateLayout, t.Date)
		if err != nil {
			return nil, invalidSeed("transaction "+t.ID+": date", err)
		}
		seed.Transactions = append(seed.Transactions, &entity.Transaction{
			ID:       t.ID,
			Title:    t.Title,
			Amount:   decimal.RequireFromString(t.Amount),
			Category: t.Category,
			Date:     date,
			Type:     entity.TransactionType(t.Type),
		})
	}

	for _, c := range f.Challenges {
		seed.Challenges = append(seed.Challenges, &entity.Challenge{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Difficulty:  entity.ChallengeDifficulty(c.Difficulty),
			RewardXP:    c.RewardXP,
			Active:      c.Active,
		})
	}

	return seed, nil
}

func fromSeed(seed *entity.Seed) File {
	var f File

	for _, g := range seed.Goals {
		record := GoalRecord{
			ID:            g.ID,
			Title:         g.Title,
			TargetAmount:  g.TargetAmount.StringFixed(2),
			CurrentAmount: g.CurrentAmount.StringFixed(2),
			Emoji:         g.Emoji,
		}
		if g.Deadline != nil {
			record.Deadline = g.Deadline.Format(dateLayout)
		}
		f.Goals = append(f.Goals, record)
	}

	for _, t := range seed.Transactions {
		f.Transactions = append(f.Transactions, TransactionRecord{
			ID:       t.ID,
			Title:    t.Title,
			Amount:   t.Amount.StringFixed(2),
			Category: t.Category,
			Date:     t.Date.Format(dateLayout),
			Type:     string(t.Type),
		})
	}

	for _, c := range seed.Challenges {
		f.Challenges = append(f.Challenges, ChallengeRecord{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Difficulty:  string(c.Difficulty),
			RewardXP:    c.RewardXP,
			Active:      c.Active,
		})
	}

	return f
}

// describe turns validator errors into "Field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid seed file"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return "invalid seed records (" + strings.Join(parts, ", ") + ")"
}

func invalidSeed(message string, err error) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidSeed,
		message,
		errors.Join(domainerror.ErrInvalidSeed, err),
	)
}
