package domain

import "strings"

// Packaging is the closed set of artifact shapes a module can produce.
type Packaging int

const (
	// PackagingOther is any packaging no archive strategy exists for.
	PackagingOther Packaging = iota
	// PackagingAggregate is a parent project that only groups child modules.
	PackagingAggregate
	// PackagingLibrary is a simple compressed bundle (jar and its variants).
	PackagingLibrary
	// PackagingWebArchive is a web application archive.
	PackagingWebArchive
	// PackagingEnterpriseArchive is an enterprise application archive.
	PackagingEnterpriseArchive
)

// ParsePackaging maps a declared packaging name onto its kind.
// Unknown names map to PackagingOther; the declared name is kept by the descriptor.
func ParsePackaging(name string) Packaging {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pom":
		return PackagingAggregate
	case "", "jar", "ejb", "maven-plugin", "bundle":
		return PackagingLibrary
	case "war":
		return PackagingWebArchive
	case "ear":
		return PackagingEnterpriseArchive
	default:
		return PackagingOther
	}
}

// String returns the kind name.
func (p Packaging) String() string {
	switch p {
	case PackagingAggregate:
		return "aggregate"
	case PackagingLibrary:
		return "library"
	case PackagingWebArchive:
		return "web-archive"
	case PackagingEnterpriseArchive:
		return "enterprise-archive"
	case PackagingOther:
		return "other"
	default:
		return "unknown"
	}
}

// ArchiveType is the file extension and alias target name of the archive the kind produces.
// It is empty for kinds that do not assemble an archive.
func (p Packaging) ArchiveType() string {
	switch p {
	case PackagingLibrary:
		return "jar"
	case PackagingWebArchive:
		return "war"
	case PackagingEnterpriseArchive:
		return "ear"
	case PackagingAggregate, PackagingOther:
		return ""
	default:
		return ""
	}
}
