package xbrl

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ExtractResult pairs one zip member's extraction outcome with its slot,
// so results can be released to the caller in the archive's original
// order even though extraction itself runs concurrently (spec §5 — "FIFO
// release").
type ExtractResult struct {
	Member ZipMember
	Rows   []Row
	Err    error
}

// ExtractMembersPooled runs Extract over every member of a zip archive
// using a bounded worker pool, then releases results strictly in archive
// order (spec §5). concurrency caps simultaneous in-flight extractions;
// a non-nil error from any single member's Extract call does not abort
// the others — Extract only ever returns an error for BadFilename (spec
// §7's one unrecoverable condition), so the caller is expected to log and
// skip that member via ExtractResult.Err rather than treat it as fatal.
func ExtractMembersPooled(ctx context.Context, members []ZipMember, concurrency int) ([]ExtractResult, error) {
	results := make([]ExtractResult, len(members))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i, member := range members {
		i, member := i, member
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			rows, err := Extract(member.Name, member.Data)
			results[i] = ExtractResult{Member: member, Rows: rows, Err: err}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
