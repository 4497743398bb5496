package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"travelplanner/internal/models/response_models"
	"travelplanner/pkg/metrics"
	"travelplanner/pkg/utils"
)

const shareIssuer = "travelplanner"

// LinkCopiedNotice is shown after falling back to the clipboard.
var LinkCopiedNotice = utils.Notice{
	Title:       "Link copied!",
	Description: "Itinerary link has been copied to your clipboard.",
}

// BuildSharePayload assembles what a native share sheet receives.
func BuildSharePayload(it response_models.Itinerary, url string) response_models.SharePayload {
	return response_models.SharePayload{
		Title: fmt.Sprintf("%s Travel Itinerary", it.City),
		Text:  fmt.Sprintf("Check out my %d-day itinerary for %s! 🌍✈️", len(it.Days), it.City),
		URL:   url,
	}
}

// ClipboardText is the fallback text copied when native sharing fails.
func ClipboardText(p response_models.SharePayload) string {
	return p.Text + "\n\n" + p.URL
}

type ShareServiceInterface interface {
	CreateShareLink(ctx context.Context, it response_models.Itinerary) (*response_models.ShareResponse, error)
	ResolveShareLink(ctx context.Context, token string) (*response_models.Itinerary, error)
}

type shareClaims struct {
	Itinerary response_models.Itinerary `json:"itinerary"`
	jwt.RegisteredClaims
}

type ShareService struct {
	secret  []byte
	baseURL string
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewShareService(secret string, baseURL string, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) ShareServiceInterface {
	return &ShareService{
		secret:  []byte(secret),
		baseURL: baseURL,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *ShareService) CreateShareLink(ctx context.Context, it response_models.Itinerary) (*response_models.ShareResponse, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	token, err := utils.CreateToken(s.secret, shareClaims{
		Itinerary: it,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    shareIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	if err != nil {
		s.record("create", "error")
		return nil, fmt.Errorf("sign share link: %w", err)
	}

	payload := BuildSharePayload(it, s.baseURL+"/shared/"+token)
	s.record("create", "ok")

	return &response_models.ShareResponse{
		Payload:       payload,
		ClipboardText: ClipboardText(payload),
		ExpiresAt:     utils.FormatRFC3339(expiresAt),
	}, nil
}

func (s *ShareService) ResolveShareLink(ctx context.Context, token string) (*response_models.Itinerary, error) {
	claims := &shareClaims{}
	if err := utils.ValidateToken(s.secret, token, claims); err != nil {
		outcome := "invalid"
		if errors.Is(err, utils.ErrShareLinkExpired) {
			outcome = "expired"
		}
		s.record("resolve", outcome)
		s.logger.Debug("share link rejected", zap.Error(err))
		return nil, err
	}
	if claims.Issuer != shareIssuer {
		s.record("resolve", "invalid")
		return nil, fmt.Errorf("%w: unexpected issuer %q", utils.ErrInvalidShareLink, claims.Issuer)
	}

	s.record("resolve", "ok")
	return &claims.Itinerary, nil
}

func (s *ShareService) record(op, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ShareLinks.WithLabelValues(op, outcome).Inc()
}

// Sharer hands a payload to the platform's native share capability.
type Sharer interface {
	Share(ctx context.Context, payload response_models.SharePayload) error
}

// Copier puts text on the clipboard.
type Copier interface {
	Copy(text string) error
}

type ShareOutcome struct {
	Method string
	Notice *utils.Notice
}

const (
	ShareMethodNative    = "native"
	ShareMethodClipboard = "clipboard"
)

// ShareDispatcher tries the native share first and falls back to the
// clipboard when there is none or it fails. There are no retries.
type ShareDispatcher struct {
	Native    Sharer
	Clipboard Copier
	Logger    *zap.Logger
}

func (d ShareDispatcher) Dispatch(ctx context.Context, payload response_models.SharePayload) (ShareOutcome, error) {
	if d.Native != nil {
		err := d.Native.Share(ctx, payload)
		if err == nil {
			return ShareOutcome{Method: ShareMethodNative}, nil
		}
		if d.Logger != nil {
			d.Logger.Debug("native share failed, copying to clipboard", zap.Error(err))
		}
	}

	if d.Clipboard == nil {
		return ShareOutcome{}, utils.ErrClipboardUnavailable
	}
	if err := d.Clipboard.Copy(ClipboardText(payload)); err != nil {
		return ShareOutcome{}, err
	}

	notice := LinkCopiedNotice
	return ShareOutcome{Method: ShareMethodClipboard, Notice: &notice}, nil
}
