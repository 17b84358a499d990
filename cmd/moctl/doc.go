/*
Moctl administers Moera nodes and name records.

The domain subcommands manage the domains a node serves:

	moctl -H https://my.moera.blog -S <root-secret> domain list
	moctl -H https://my.moera.blog -T <token> domain get
	moctl -H https://my.moera.blog domain create new.moera.blog
	moctl -H https://my.moera.blog -S <root-secret> domain delete old.moera.blog

The name subcommands change naming service records. Updates are guarded by
optimistic concurrency: the record state observed at command start is
submitted as a precondition, and when another administrator changed the
record in between the command fails with a conflict instead of retrying.
Check the record with moname and run the command again if the change is
still wanted.

	moctl name update alice --node-uri https://node2.example --keys ~/.moera/alice-keys.json
	moctl name rotate alice --keys ~/.moera/alice-keys.json --new-keys ~/.moera/alice-signing.json

Credentials come from flags, MOCTL_* environment variables or ~/.moerc.yaml,
where the hosts section maps hostname suffixes to admin tokens and root
secrets.
*/
package main
