// Confkit reads configuration values the way an application using the
// confkit library would see them.
//
// Usage:
//
//	confkit get SECRET_KEY                        # discover settings.ini or .env from the cwd
//	confkit get DEBUG --cast bool --default false
//	confkit get ALLOWED_HOSTS --cast csv --dir ./deploy
//	confkit get PORT --source .os --source local.env --source base.json
//	confkit get DEBUG --consul-root myapp --consul-addr http://consul:8500
//	confkit list --source settings.yaml
//	confkit version
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
