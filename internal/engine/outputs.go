package engine

import (
	"dumpdriver/internal/engines/cleanrip"
	"dumpdriver/internal/engines/dic"
	"dumpdriver/internal/engines/ps3cfw"
	"dumpdriver/internal/engines/redumper"
	"dumpdriver/internal/engines/umd"
	"dumpdriver/internal/engines/xbc"
	"dumpdriver/internal/extract"
	"dumpdriver/internal/manifest"
	"dumpdriver/internal/target"
)

// CheckAllPresent verifies the files a run of the engine left at base. With
// precheck, required log files may also be found inside the log bundle.
func CheckAllPresent(id ID, base string, system target.System, media target.MediaType, precheck bool) manifest.Result {
	return manifest.CheckAllPresent(Outputs(id), base, system, media, precheck)
}

// Archive bundles the engine's archivable logs next to base.
func Archive(id ID, base string, system target.System, media target.MediaType, removeOriginals bool) (manifest.ArchiveResult, error) {
	return manifest.Archive(Outputs(id), base, system, media, removeOriginals)
}

// Delete removes the engine's intermediate files.
func Delete(id ID, base string, system target.System, media target.MediaType) ([]string, error) {
	return manifest.Delete(Outputs(id), base, system, media)
}

// Extract scrapes the engine's logs into a metadata record and attaches the
// artifact blobs named by the engine's manifest. Logs already moved into the
// log bundle are read from there.
func Extract(id ID, base string, system target.System, media target.MediaType, hasher extract.Hasher) extract.Metadata {
	if !id.Known() {
		return extract.Metadata{}
	}
	src := extract.Source{Hasher: hasher}
	if bundle, err := manifest.OpenBundle(manifest.BundlePath(base)); err == nil {
		defer bundle.Close()
		src.Bundle = bundle
	}

	var md extract.Metadata
	switch id {
	case DiscImageCreator:
		md = dic.Extract(src, base, system, media)
	case Redumper:
		md = redumper.Extract(src, base, system, media)
	case CleanRip:
		md = cleanrip.Extract(src, base, system, media)
	case UmdImageCreator:
		md = umd.Extract(src, base, system, media)
	case PS3CFW:
		md = ps3cfw.Extract(src, base, system, media)
	case XboxBackupCreator:
		md = xbc.Extract(src, base, system, media)
	}
	if artifacts := manifest.Artifacts(Outputs(id), base, system, media); len(artifacts) > 0 {
		md.Artifacts = artifacts
	}
	return md
}
