package app

import (
	"context"
	"fmt"
	"io"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/diary"
	"github.com/five82/pacer/internal/format"
)

// Output selects how a one-shot command prints what it fetched.
type Output struct {
	Writer io.Writer
	Format string
	Pretty bool
}

// PrintDiary fetches one diary page and writes the raw records.
func PrintDiary(ctx context.Context, configPath, date string, out Output) error {
	d := diary.Today()
	if date != "" {
		parsed, err := diary.Parse(date)
		if err != nil {
			return err
		}
		d = parsed
	}

	_, client, err := connect(configPath)
	if err != nil {
		return err
	}
	records, err := client.FetchDiary(ctx, d.String())
	if err != nil {
		return describe(err, "fetch diary "+d.String())
	}
	return format.Write(out.Writer, records, out.Format, out.Pretty)
}

// PrintStatistics fetches the statistics components and writes them.
func PrintStatistics(ctx context.Context, configPath string, out Output) error {
	_, client, err := connect(configPath)
	if err != nil {
		return err
	}
	stats, err := client.FetchStatistics(ctx)
	if err != nil {
		return describe(err, "fetch statistics")
	}
	return format.Write(out.Writer, stats, out.Format, out.Pretty)
}

func describe(err error, action string) error {
	if api.IsUnauthorized(err) {
		return fmt.Errorf("%s: api rejected the token, set api_token in the config: %w", action, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}
