// Package maven models artifact coordinates and the dependency section of a
// build document (the <dependencies> of a POM).
//
// # Identity
//
// Every entity has an identity key, and the collections deduplicate by it:
//
//   - [Coordinate]: (group, artifact). Version is not identity.
//   - [Exclusion]: (group, artifact).
//   - [Dependency]: (group, artifact, type, classifier). Version and scope
//     are not identity.
//
// # Merge on insert
//
// [DependencyList.Add] never stores two dependencies with the same key. A
// re-declaration updates the version of the stored entry, which keeps its
// position and stays the canonical object. [ExclusionList.Add] replaces an
// equal exclusion and moves it to the end.
//
// # Declaring dependencies
//
// Host documents embed [Registry] (as [Model] does) and declare through it:
//
//	m, _ := maven.NewModel("com.example:app:1.0.0")
//	m.Jar("org.slf4j:slf4j-api:1.7.36")
//	m.Jar("org.slf4j:slf4j-api")           // bare re-mention keeps 1.7.36
//	m.TestJar("junit", "junit", "4.13.2")
//	m.Gem("rake")                          // version ">= 0"
//
//	m.HasJar("org.slf4j:slf4j-api")        // true
//	m.HasTestJar("junit:junit")            // true
//
// Coordinates are given as "group:artifact[:version]" strings or as
// positional (group, artifact[, version]) tokens; "[0,)" stands for an
// unspecified version. See [NewDependency] for classifier inference.
//
// # Errors
//
// Malformed coordinates fail with an INVALID_FORMAT error, forbidden call
// shapes (a trailing [Config] map) with INVALID_ARGUMENT; see
// [github.com/matzehuels/mvnmodel/pkg/errors]. Parsing always happens
// before any collection is touched, so a failed declaration changes nothing.
package maven
