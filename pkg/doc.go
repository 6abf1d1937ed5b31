// Package pkg provides the libraries behind mvnmodel.
//
// # Overview
//
// mvnmodel models the dependency section of a Maven build document: artifact
// coordinates, declared dependencies, and their exclusions. Declaring the same
// artifact twice never produces a duplicate; the second declaration is merged
// into the first.
//
//  1. [maven] - Coordinates, dependencies, exclusions and the declaration
//     builder (Jar, TestJar, Pom, Gem, Exclude) with membership queries
//  2. [maven/pom] - Reading and writing pom.xml
//  3. [manifest] - TOML declaration files
//  4. [render/nodelink] - Graphviz diagrams of a dependency section
//  5. [errors] - Coded errors shared by all packages
//
// # Architecture
//
//	declaration file (TOML) or pom.xml
//	         ↓
//	    [manifest] / [maven/pom] (decode, declare in file order)
//	         ↓
//	    [maven] Model (merge on insert)
//	         ↓
//	    pom.xml / listing / DOT / SVG
//
// # Quick Start
//
//	var m maven.Model
//	m.Jar("org.slf4j:slf4j-api", "1.7.36")
//	m.Jar("org.hibernate:hibernate-core", "5.6.15.Final", func(d *maven.Dependency) {
//	    d.Exclude("org.jboss.logging:jboss-logging")
//	})
//	m.Gem("rake", "~> 13.0")
//
//	m.HasJar("org.slf4j:slf4j-api") // true
//
//	pom.Write(os.Stdout, &m)
//
// [maven]: https://pkg.go.dev/github.com/matzehuels/mvnmodel/pkg/maven
// [maven/pom]: https://pkg.go.dev/github.com/matzehuels/mvnmodel/pkg/maven/pom
// [manifest]: https://pkg.go.dev/github.com/matzehuels/mvnmodel/pkg/manifest
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/mvnmodel/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/matzehuels/mvnmodel/pkg/errors
package pkg
