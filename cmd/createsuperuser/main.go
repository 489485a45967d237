// Command createsuperuser exists only to refuse. Admin accounts are
// provisioned out of band via ADMIN_USERNAME/ADMIN_PASSWORD at server
// boot, never interactively.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "Creating superusers via this command is disabled for security reasons.")
	fmt.Fprintln(os.Stderr, "Please contact the system administrator if you need admin access.")
	os.Exit(1)
}
