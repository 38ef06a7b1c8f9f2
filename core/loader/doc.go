// Package loader mounts the service's features on the fiber app.
//
// A Feature names itself, says whether its backend is available and registers
// its routes. The Manager loads features in registration order, skips disabled
// ones with an info log and refuses two features with the same name:
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(collection.NewFeature(db, logg, metrics))
//	mgr.Register(reconciliation.NewFeature(opts))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader
