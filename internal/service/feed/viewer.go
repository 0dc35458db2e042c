package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thepole/flyerboard-backend/internal/domain"
	"github.com/thepole/flyerboard-backend/pkg/ctxutil"
)

// ResolveViewer derives the request's viewer from the context. Anonymous
// requests yield domain.Anonymous. For authenticated requests the age is
// computed once from the stored date of birth; a missing profile leaves
// the viewer authenticated but with age 0, which keeps adult content
// default-denied.
func (s *Service) ResolveViewer(ctx context.Context) (domain.Viewer, error) {
	viewerID, ok := ctxutil.ViewerIDFromCtx(ctx)
	if !ok {
		return domain.Anonymous, nil
	}

	profile, err := s.profiles.GetByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "viewer has no profile, treating as underage",
				slog.String("viewer_id", viewerID.String()),
			)
			return domain.Viewer{ID: viewerID, Authenticated: true}, nil
		}
		return domain.Viewer{}, fmt.Errorf("load profile: %w", err)
	}

	return domain.NewViewer(viewerID, profile.DateOfBirth, s.now()), nil
}
