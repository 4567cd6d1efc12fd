// Package mongo connects to MongoDB with the official v2 driver and exposes
// the collection used by registry.Mongo.
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//	claims := registry.Mongo(mongo.SlugCollection(client, cfg))
//
// Slugs are stored as document ids, so no extra index is required.
package mongo
