package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// filterFlags holds the corpus filter values shared by the analytics
// commands. Each command registers its own copy so flag state never
// leaks between commands.
type filterFlags struct {
	keyword   string
	from      string
	to        string
	platform  string
	community string
}

const filterDateLayout = "2006-01-02"

// register adds the filter flags to a command.
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.keyword, "keyword", "k", "", "case-insensitive keyword filter")
	cmd.Flags().StringVar(&f.from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.platform, "platform", "", "platform filter")
	cmd.Flags().StringVar(&f.community, "community", "", "community filter")
}

// spec converts the flag values into a FilterSpec.
func (f *filterFlags) spec() (domain.FilterSpec, error) {
	spec := domain.FilterSpec{
		Keyword:   f.keyword,
		Platform:  f.platform,
		Community: f.community,
	}

	if f.from != "" {
		t, err := time.Parse(filterDateLayout, f.from)
		if err != nil {
			return domain.FilterSpec{}, fmt.Errorf("invalid --from date %q: %w", f.from, err)
		}
		spec.From = &t
	}
	if f.to != "" {
		t, err := time.Parse(filterDateLayout, f.to)
		if err != nil {
			return domain.FilterSpec{}, fmt.Errorf("invalid --to date %q: %w", f.to, err)
		}
		spec.To = &t
	}

	return spec, nil
}

// filteredPosts loads the corpus and applies the filter flags.
func (f *filterFlags) filteredPosts(cmd *cobra.Command) ([]domain.Post, error) {
	if err := loadCorpus(cmd); err != nil {
		return nil, err
	}

	spec, err := f.spec()
	if err != nil {
		return nil, err
	}

	return analyticsService.Filter(corpusService.Posts(), spec), nil
}

// parseBucket maps a --bucket flag value onto a TimeBucket.
func parseBucket(s string) (domain.TimeBucket, error) {
	switch s {
	case "", "day":
		return domain.BucketDay, nil
	case "hour":
		return domain.BucketHour, nil
	case "week":
		return domain.BucketWeek, nil
	case "month":
		return domain.BucketMonth, nil
	default:
		return domain.BucketDay, fmt.Errorf("invalid --bucket %q: want hour, day, week or month", s)
	}
}
