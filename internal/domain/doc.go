// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/property, domain/owner,
// domain/image, domain/trace). This root package holds the error envelope,
// its sentinel classifications, and the Result/Page envelopes returned by
// every repository and service operation.
package domain
