// Package dify implements the KnowledgeStore driven port against a
// Dify-compatible knowledge-base REST API. All calls are bearer-token
// authenticated JSON requests under a configured base URL; responses are
// returned as decoded payloads so callers can pass them through unchanged.
package dify
