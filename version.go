package routeopt

// Version is the release of the routeopt module and command.
const Version = "0.3.0"
