package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"newsdesk-admin/models"

	"golang.org/x/sync/errgroup"
)

// RefSource fetches the raw bytes behind a reference that is not yet a
// permanent URL. The default source understands data URIs, which is how the
// dashboard hands over not-yet-uploaded images.
type RefSource interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// IsPermanentURL reports whether a reference already denotes an uploaded
// asset and must be passed through untouched.
func IsPermanentURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

type dataURISource struct{}

func NewDataURISource() RefSource {
	return dataURISource{}
}

func (dataURISource) Fetch(_ context.Context, ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "data:") {
		return nil, fmt.Errorf("unresolvable image reference %q", truncateRef(ref))
	}
	meta, data, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URI %q", truncateRef(ref))
	}
	if strings.HasSuffix(meta, ";base64") {
		return base64.StdEncoding.DecodeString(data)
	}
	decoded, err := url.QueryUnescape(data)
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}

func truncateRef(ref string) string {
	if len(ref) > 64 {
		return ref[:64] + "..."
	}
	return ref
}

// SectionResolver replaces every transient reference in a section list with
// a permanent URL, uploading via the ImageStore.
type SectionResolver struct {
	store  ImageStore
	source RefSource
}

func NewSectionResolver(store ImageStore, source RefSource) *SectionResolver {
	if source == nil {
		source = NewDataURISource()
	}
	return &SectionResolver{store: store, source: source}
}

// Resolve returns a new section list where every entry of Images and
// ListItems is a permanent URL. Replacement is positional: section order and
// within-list order survive regardless of upload completion order. The whole
// batch fails on the first failing reference; no partial result is returned.
// An already-resolved input comes back equal, with zero uploads. The input
// is never mutated.
func (r *SectionResolver) Resolve(ctx context.Context, sections []models.Section) ([]models.Section, error) {
	out := make([]models.Section, len(sections))
	g, ctx := errgroup.WithContext(ctx)

	for i, s := range sections {
		i := i
		out[i] = s.Clone()

		for j, ref := range out[i].Images {
			j, ref := j, ref
			if IsPermanentURL(ref) {
				continue
			}
			g.Go(func() error {
				resolved, err := r.resolveRef(ctx, ref)
				if err != nil {
					return err
				}
				out[i].Images[j] = resolved
				return nil
			})
		}

		for j, ref := range out[i].ListItems {
			j, ref := j, ref
			if IsPermanentURL(ref) {
				continue
			}
			g.Go(func() error {
				resolved, err := r.resolveRef(ctx, ref)
				if err != nil {
					return err
				}
				out[i].ListItems[j] = resolved
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SectionResolver) resolveRef(ctx context.Context, ref string) (string, error) {
	data, err := r.source.Fetch(ctx, ref)
	if err != nil {
		return "", err
	}
	return r.store.Upload(ctx, bytes.NewReader(data), "section-image")
}
