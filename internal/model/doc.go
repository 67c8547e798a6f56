package model

// Package model defines the data the app passes around: the metadata record
// and encoding options reported by yt-dlp, the selection policy applied to
// them, download tasks with their status, and playlist listings.
