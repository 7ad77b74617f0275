// Package checkfile parses declarative filesystem check suites.
//
// A check suite is a YAML file (conventionally *.checks.yaml) listing
// paths and the expectations to verify against them:
//
//	version: 1
//	checks:
//	  - name: app config
//	    path: /etc/app/config.yaml
//	    tags: [smoke]
//	    expect:
//	      exists: true
//	      type: file
//	      readable: true
//	      parent: /etc/app
//
// Relative paths are resolved against the suite file's directory at run
// time. Expectations map one-to-one onto the checks in packages/paths.
package checkfile
