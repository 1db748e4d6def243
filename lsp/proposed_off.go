//go:build !proposed

package lsp

type (
	clientCapabilitiesProposed             struct{}
	textDocumentClientCapabilitiesProposed struct{}
	serverCapabilitiesProposed             struct{}
	initializeResultProposed               struct{}
)
