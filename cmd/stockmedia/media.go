package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

// maxConcurrentGets bounds parallel detail lookups in "get".
const maxConcurrentGets = 4

// mediaKind binds one resource endpoint to its command names and renderers.
type mediaKind[R, D any] struct {
	singular string
	plural   string
	endpoint func(*shutterstock.Client) *shutterstock.Endpoint[R, D]
	summary  func(R) string
	details  func(*D) string
}

var imageKind = mediaKind[shutterstock.Image, shutterstock.ImageDetails]{
	singular: "image",
	plural:   "images",
	endpoint: func(c *shutterstock.Client) *shutterstock.Endpoint[shutterstock.Image, shutterstock.ImageDetails] {
		return c.Image
	},
	summary: renderImage,
	details: renderImageDetails,
}

var videoKind = mediaKind[shutterstock.Video, shutterstock.VideoDetails]{
	singular: "video",
	plural:   "videos",
	endpoint: func(c *shutterstock.Client) *shutterstock.Endpoint[shutterstock.Video, shutterstock.VideoDetails] {
		return c.Video
	},
	summary: renderVideo,
	details: renderVideoDetails,
}

func newImageCmd() *cobra.Command { return newMediaCmd(imageKind) }

func newVideoCmd() *cobra.Command { return newMediaCmd(videoKind) }

// newMediaCmd returns the command group for one resource: list, get and search.
func newMediaCmd[R, D any](k mediaKind[R, D]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   k.singular,
		Short: fmt.Sprintf("Look up and search %s", k.plural),
	}
	cmd.AddCommand(newListCmd(k), newGetCmd(k), newSearchCmd(k))
	return cmd
}

func newListCmd[R, D any](k mediaKind[R, D]) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list <id>...",
		Short:   fmt.Sprintf("List %s by id in one request", k.plural),
		Example: fmt.Sprintf("  stockmedia %s list 108559295 143051491", k.singular),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := setup()
			if err != nil {
				return err
			}
			ep := k.endpoint(client)
			return output(cmd, asJSON, "Fetching "+k.plural,
				func(ctx context.Context) (*shutterstock.ListResult[R], error) {
					return ep.List(ctx, args)
				},
				func(r *shutterstock.ListResult[R]) string {
					return renderList(k.plural, r, k.summary)
				},
			)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON result")
	return cmd
}

// getOutcome is the result of one detail lookup in "get".
type getOutcome[D any] struct {
	ID    string `json:"id"`
	Data  *D     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func newGetCmd[R, D any](k mediaKind[R, D]) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "get <id>...",
		Short:   fmt.Sprintf("Show %s details, one request per id", k.singular),
		Example: fmt.Sprintf("  stockmedia %s get 108559295", k.singular),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := setup()
			if err != nil {
				return err
			}
			ep := k.endpoint(client)

			var outcomes []getOutcome[D]
			err = output(cmd, asJSON, "Fetching "+k.plural,
				func(ctx context.Context) ([]getOutcome[D], error) {
					var err error
					outcomes, err = getAll(ctx, ep, args)
					return outcomes, err
				},
				func(o []getOutcome[D]) string {
					return renderOutcomes(o, k.details)
				},
			)
			if err != nil {
				return err
			}
			if failed := countFailed(outcomes); failed > 0 {
				return fmt.Errorf("%d of %d lookups failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON result")
	return cmd
}

// getAll fetches every id concurrently. Per-id failures are recorded in the
// outcome; only cancellation aborts the batch.
func getAll[R, D any](ctx context.Context, ep *shutterstock.Endpoint[R, D], ids []string) ([]getOutcome[D], error) {
	outcomes := make([]getOutcome[D], len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGets)
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i].ID = id
			d, _, err := ep.Get(gctx, id)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				outcomes[i].Error = err.Error()
				return nil
			}
			outcomes[i].Data = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func countFailed[D any](outcomes []getOutcome[D]) int {
	n := 0
	for _, o := range outcomes {
		if o.Data == nil {
			n++
		}
	}
	return n
}

func newSearchCmd[R, D any](k mediaKind[R, D]) *cobra.Command {
	var (
		asJSON bool
		opts   shutterstock.SearchOptions
	)
	cmd := &cobra.Command{
		Use:   "search [keyword]...",
		Short: fmt.Sprintf("Search %s by keyword", k.plural),
		Example: fmt.Sprintf(`  stockmedia %[1]s search donkey
  stockmedia %[1]s search "red fox" --page 2 --per-page 10 --sort newest`, k.singular),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Page < 0 || opts.PerPage < 0 {
				return errors.New("--page and --per-page must not be negative")
			}
			opts.Query = strings.Join(args, " ")

			client, err := setup()
			if err != nil {
				return err
			}
			ep := k.endpoint(client)
			return output(cmd, asJSON, "Searching "+k.plural,
				func(ctx context.Context) (*shutterstock.SearchResult[R], error) {
					return ep.Search(ctx, opts)
				},
				func(r *shutterstock.SearchResult[R]) string {
					return renderSearch(k.plural, r, k.summary)
				},
			)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON result")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "result page, starting at 1")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "sort order, e.g. popular, newest, relevance")
	return cmd
}

// output runs fetch and prints its result, as JSON or rendered behind a spinner.
func output[T any](
	cmd *cobra.Command, asJSON bool, label string,
	fetch func(context.Context) (T, error), render func(T) string,
) error {
	if !asJSON {
		return withSpinner(label, func(ctx context.Context) (string, error) {
			v, err := fetch(ctx)
			if err != nil {
				return "", err
			}
			return render(v), nil
		})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	v, err := fetch(ctx)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), v)
}
