// Package mfe contributes the customised authn micro-frontend to the host:
// an MFE_APPS configuration default pointing at a fork of frontend-app-authn,
// and an environment patch enabling custom branding.
//
// Nothing here touches global state. Register receives the registrar and the
// environment lookup explicitly and hands both contributions back to the
// caller.
package mfe
