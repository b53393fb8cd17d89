// Provides platform-appropriate paths for the tool.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS. The tool name "forgeup" is used as the subdirectory under each
// base path. Transcripts live under the state directory; the scratch root
// for clones and builds lives under the cache directory.
package paths
