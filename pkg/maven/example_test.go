package maven_test

import (
	"fmt"

	"github.com/matzehuels/mvnmodel/pkg/maven"
)

func ExampleRegistry_Jar() {
	m, _ := maven.NewModel("com.example:app:1.0.0")

	m.Jar("org.slf4j:slf4j-api:1.7.36")
	m.Jar("org.slf4j:slf4j-api") // bare re-mention keeps the pinned version
	m.TestJar("junit", "junit", "4.13.2")

	for d := range m.Dependencies().All() {
		fmt.Println(d, m.HasTestJar(d.ID()))
	}
	// Output:
	// org.slf4j:slf4j-api:jar:1.7.36 false
	// junit:junit:jar:4.13.2 true
}

func ExampleRegistry_Dependencies() {
	m, _ := maven.NewModel("com.example:app:2.1.0")

	// The callback gets the registry; the host Model is reached by capture.
	m.Dependencies(func(r *maven.Registry) {
		r.Pom(m.GroupID+":platform-bom", m.Version)
		r.Jar(m.GroupID+":app-core", m.Version)
	})

	for d := range m.Dependencies().All() {
		fmt.Println(d)
	}
	// Output:
	// com.example:platform-bom:pom:2.1.0
	// com.example:app-core:jar:2.1.0
}

func ExampleRegistry_Gem() {
	var r maven.Registry

	rake, _ := r.Gem("rake")
	fmt.Println(rake.Version)

	r.Gem("rake", "~> 13.0")
	fmt.Println(rake.Version)

	v, _ := rake.MavenVersion()
	fmt.Println(v)
	// Output:
	// >= 0
	// ~> 13.0
	// [13.0,14)
}

func ExampleDependency_Exclude() {
	d, _ := maven.NewJar("org.hibernate:hibernate-core:5.6.15.Final")
	d.Exclude("org.jboss.logging:jboss-logging")
	d.Exclude("org.jboss.logging", "jboss-logging")

	fmt.Println(d.Exclusions().Len())
	// Output:
	// 1
}

func ExampleNewDependency() {
	d, _ := maven.NewDependency(maven.TypeJar, "org.testng:testng", "6.8", "jdk15")
	fmt.Println(d.Version, d.Classifier)

	d, _ = maven.NewDependency(maven.TypeJar, "org.testng:testng", ">= 6.8", "< 7")
	fmt.Printf("%s %q\n", d.Version, d.Classifier)
	// Output:
	// 6.8 jdk15
	// >= 6.8, < 7 ""
}
