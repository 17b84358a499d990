/*
Moname queries the Moera naming service. The plain form resolves a name to
the node URI it is bound to:

	moname alice
	alice_3	https://node1.example

A _N suffix asks for the record the name had at generation N. The -s flag
looks for a similar name when the exact one is unknown, and -l lists all
registered names page by page.

The naming service is eventually consistent. A name that has been registered
but has not propagated to all replicas yet is reported as "pending" rather
than "not found"; concluding that such a name is free would be wrong.

The naming server defaults to the production one and can be changed with the
--server flag, the MONAME_SERVER environment variable or the naming-server
key of ~/.moerc.yaml.
*/
package main
