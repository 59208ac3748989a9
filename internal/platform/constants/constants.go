// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Session issuer, admin allow-list and redirect delays.
  - Storage: Collection names and singleton document ids.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "folio"
	AppVersion = "0.3.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Uploads are multipart so this is looser than a pure JSON API would use.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds connecting to backing services at boot.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// ContactRateLimitPerMinute caps contact-form submissions per IP.
	ContactRateLimitPerMinute = 3

	// ContactRateLimitBurst allows a couple of quick retries after a validation error.
	ContactRateLimitBurst = 3

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session JWTs.
	AuthIssuer = "folio.dev"

	// SessionTTL is how long an admin session stays valid.
	SessionTTL = 12 * time.Hour

	// LoginRedirectDelay is how long the client waits before following the
	// post-login redirect, so the success notification is visible.
	LoginRedirectDelay = 1500 * time.Millisecond

	// LogoutRedirectDelay is the same delay after signing out.
	LogoutRedirectDelay = 1000 * time.Millisecond

	// SessionCookieName is the cookie carrying the admin session token.
	SessionCookieName = "folio_session"
)

// AdminAllowList is the fixed set of identities allowed into the dashboard.
// ADMIN_EMAILS replaces it at deploy time.
var AdminAllowList = []string{
	"owner@folio.dev",
	"tai.buivan.jp@gmail.com",
}

// # Notifications

const (
	// NotificationSuppressWindow drops identical notifications shown again within the window.
	NotificationSuppressWindow = 3 * time.Second

	// NotificationQueueSize bounds the pending notifications kept per audience.
	NotificationQueueSize = 16
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
	HeaderXNotification = "X-Notification"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Document Collections

const (
	CollectionProjects   = "projects"
	CollectionSkills     = "skills"
	CollectionExperience = "experience"
	CollectionMessages   = "messages"
	CollectionBlogPosts  = "blog_posts"
	CollectionSiteConfig = "site_config"
)

// # Singleton Documents

const (
	DocProfileImage = "profile_image"
	DocContactInfo  = "contact_info"
)

// # Media

const (
	// MaxUploadBytes is the largest image accepted by the upload endpoint.
	MaxUploadBytes = 10 << 20

	// DefaultCDNBaseURL is the image CDN API root.
	DefaultCDNBaseURL = "https://api.cloudinary.com"

	// CDNRequestTimeout bounds a single upload round-trip.
	CDNRequestTimeout = 60 * time.Second
)

// # Résumé

const (
	// ResumePhotoTimeout bounds fetching the profile photo for the PDF.
	ResumePhotoTimeout = 10 * time.Second

	// DefaultResumeTemplate is used when no template is requested.
	DefaultResumeTemplate = "modern"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "folio:session:"
)
