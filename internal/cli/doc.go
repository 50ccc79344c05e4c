// Package cli wires datasets, the network builder, both searches and the
// renderer into the allroutes and shortestroute commands.
//
// Both commands run with no arguments. Every flag has an environment
// default named BUSROUTE_<FLAG> (dashes become underscores), and LoadDotEnv
// seeds the environment from a .env file without overriding variables that
// are already set. Results go to stdout; logs go to stderr.
package cli
