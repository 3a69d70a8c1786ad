// Package config provides configuration loading, merging, and validation
// facilities for the SDK.
//
// Configuration is assembled from up to three sources in the following
// priority order (earlier sources win for fields both define):
//  1. An explicit [StructuredConfig] supplied by the application
//  2. Environment variables (GOOGLE_CLOUD_PROJECT,
//     GOOGLE_APPLICATION_CREDENTIALS, FIREBASE_CREDENTIALS_BASE64,
//     FIREBASE_REQUEST_TIMEOUT)
//  3. The FIREBASE_CONFIG JSON source, which may hold either an inline JSON
//     object or the path of a JSON file, following the convention shared by
//     the Firebase Admin SDKs.
//
// The main entry points are [GetStructuredConfig] and
// [GetStructuredConfigWith].
package config
